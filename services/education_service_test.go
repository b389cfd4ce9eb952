package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learning-portal/models"
	"learning-portal/repositories"
	"learning-portal/services"
)

func TestEducationInsertFindsOrCreatesInstitute(t *testing.T) {
	store := repositories.NewInMemoryEducationStore()
	store.DegreeNames[3] = "B.Tech"
	refs := repositories.NewInMemoryReferenceStore()
	svc := services.NewEducationService(store, refs)

	first, err := svc.Insert(context.Background(), 1, models.InsertEducationRequest{
		InstituteName:     "Anna University",
		InstituteLocation: "Chennai",
		DegreeID:          3,
		GraduationDate:    "2020-05-30",
		Location:          "Chennai",
	})
	require.NoError(t, err)

	// same (name, location) pair resolves to the same institute
	second, err := svc.Insert(context.Background(), 2, models.InsertEducationRequest{
		InstituteName:     "Anna University",
		InstituteLocation: "Chennai",
		DegreeID:          3,
		GraduationDate:    "2021-05-30",
	})
	require.NoError(t, err)

	entries1, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	entries2, err := svc.List(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, entries1, 1)
	require.Len(t, entries2, 1)
	assert.Equal(t, entries1[0].InstituteID, entries2[0].InstituteID)
	assert.NotEqual(t, first, second)
}

func TestEducationInsertExplicitInstituteWins(t *testing.T) {
	store := repositories.NewInMemoryEducationStore()
	refs := repositories.NewInMemoryReferenceStore()
	svc := services.NewEducationService(store, refs)

	_, err := svc.Insert(context.Background(), 1, models.InsertEducationRequest{
		InstituteID:    7,
		DegreeID:       3,
		GraduationDate: "2020-05-30",
	})
	require.NoError(t, err)

	entries, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 7, entries[0].InstituteID)
}

func TestEducationInsertRequiresInstitute(t *testing.T) {
	svc := services.NewEducationService(
		repositories.NewInMemoryEducationStore(),
		repositories.NewInMemoryReferenceStore(),
	)

	_, err := svc.Insert(context.Background(), 1, models.InsertEducationRequest{
		InstituteName:  "Anna University", // location missing
		DegreeID:       3,
		GraduationDate: "2020-05-30",
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestEducationListNewestFirst(t *testing.T) {
	store := repositories.NewInMemoryEducationStore()
	svc := services.NewEducationService(store, repositories.NewInMemoryReferenceStore())

	_, err := svc.Insert(context.Background(), 1, models.InsertEducationRequest{
		InstituteID: 1, DegreeID: 1, GraduationDate: "2016-05-30",
	})
	require.NoError(t, err)
	_, err = svc.Insert(context.Background(), 1, models.InsertEducationRequest{
		InstituteID: 2, DegreeID: 2, GraduationDate: "2020-05-30",
	})
	require.NoError(t, err)

	entries, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2020-05-30", entries[0].GraduationDate)
	assert.Equal(t, "2016-05-30", entries[1].GraduationDate)
}

func TestEducationUpdateScopedToOwner(t *testing.T) {
	store := repositories.NewInMemoryEducationStore()
	svc := services.NewEducationService(store, repositories.NewInMemoryReferenceStore())

	id, err := svc.Insert(context.Background(), 1, models.InsertEducationRequest{
		InstituteID: 1, DegreeID: 1, GraduationDate: "2016-05-30", Location: "Chennai",
	})
	require.NoError(t, err)

	// another user updating this row matches nothing
	err = svc.Update(context.Background(), 2, models.UpdateEducationRequest{
		ID: id, InstituteID: 9, DegreeID: 9, GraduationDate: "1999-01-01",
	})
	require.NoError(t, err)

	entries, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].InstituteID)
	assert.Equal(t, "2016-05-30", entries[0].GraduationDate)

	err = svc.Update(context.Background(), 1, models.UpdateEducationRequest{
		ID: id, InstituteID: 2, DegreeID: 2, GraduationDate: "2017-05-30", Location: "Madurai",
	})
	require.NoError(t, err)

	entries, err = svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, entries[0].InstituteID)
	assert.Equal(t, "Madurai", entries[0].Location)
}
