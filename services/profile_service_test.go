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

func newProfileFixture() (*services.ProfileService, *repositories.InMemoryProfileStore, *repositories.InMemoryUserStore) {
	store := repositories.NewInMemoryProfileStore()
	store.Genders[2] = "Female"
	store.Statuses[1] = "Student"
	store.Countries[1] = "India"
	store.States[10] = "Tamil Nadu"
	store.States[11] = "Karnataka"

	users := repositories.NewInMemoryUserStore()
	pics := repositories.NewInMemoryProfilePicStore()
	return services.NewProfileService(store, users, pics), store, users
}

func seedAsha(store *repositories.InMemoryProfileStore) (int, int) {
	userID := store.SeedUser(models.User{
		FirstName:       "Asha",
		LastName:        "Raman",
		Email:           "asha@example.com",
		ContactNo:       "9876543210",
		GenderID:        2,
		DateOfBirth:     "1998-04-12",
		CurrentStatusID: 1,
	})
	addrID := store.SeedAddress(userID, models.Address{
		Label:     "Home",
		DoorNo:    "14B",
		Street:    "Kamaraj Street",
		Area:      "Anna Nagar",
		City:      "Madurai",
		Pincode:   "625020",
		CountryID: 1,
		StateID:   10,
	})
	return userID, addrID
}

func TestUpdateProfileMixedAddressList(t *testing.T) {
	svc, store, _ := newProfileFixture()
	userID, addrID := seedAsha(store)

	req := models.UpdateProfileRequest{
		FirstName:       "Asha",
		LastName:        "Raman",
		Email:           "asha@example.com",
		ContactNo:       "9876543210",
		GenderID:        2,
		DateOfBirth:     "1998-04-12",
		CurrentStatusID: 1,
		Addresses: []models.AddressInput{
			{
				AddressID: &addrID,
				Label:     "Home",
				DoorNo:    "14B",
				Street:    "Kamaraj Street",
				Area:      "T Nagar",
				City:      "Chennai",
				Pincode:   "600017",
				CountryID: 1,
				StateID:   10,
			},
			{
				Label:     "Work",
				DoorNo:    "2",
				Street:    "MG Road",
				Area:      "Indiranagar",
				City:      "Bengaluru",
				Pincode:   "560038",
				CountryID: 1,
				StateID:   11,
			},
		},
	}
	require.NoError(t, svc.UpdateProfile(context.Background(), userID, req))

	view, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, view.Addresses, 2)

	assert.Equal(t, addrID, view.Addresses[0].ID)
	assert.Equal(t, "Chennai", view.Addresses[0].City)
	assert.Equal(t, "Tamil Nadu", view.Addresses[0].StateName)

	assert.NotEqual(t, addrID, view.Addresses[1].ID)
	assert.Equal(t, "Bengaluru", view.Addresses[1].City)
	assert.Equal(t, "Karnataka", view.Addresses[1].StateName)
}

func TestUpdateProfileIsIdempotentForUpdates(t *testing.T) {
	svc, store, _ := newProfileFixture()
	userID, addrID := seedAsha(store)

	req := models.UpdateProfileRequest{
		FirstName:       "Asha",
		LastName:        "Iyer",
		Email:           "asha@example.com",
		ContactNo:       "9876543210",
		GenderID:        2,
		DateOfBirth:     "1998-04-12",
		CurrentStatusID: 1,
		Addresses: []models.AddressInput{
			{
				AddressID: &addrID,
				Label:     "Home",
				DoorNo:    "7",
				Street:    "Besant Road",
				Area:      "Mylapore",
				City:      "Chennai",
				Pincode:   "600004",
				CountryID: 1,
				StateID:   10,
			},
		},
	}

	require.NoError(t, svc.UpdateProfile(context.Background(), userID, req))
	first, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProfile(context.Background(), userID, req))
	second, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUpdateProfileCrossUserAddressIsIgnored(t *testing.T) {
	svc, store, _ := newProfileFixture()
	_, ashaAddrID := seedAsha(store)

	intruderID := store.SeedUser(models.User{
		FirstName: "Ravi",
		Email:     "ravi@example.com",
		ContactNo: "5550001111",
	})

	req := models.UpdateProfileRequest{
		FirstName: "Ravi",
		Email:     "ravi@example.com",
		ContactNo: "5550001111",
		Addresses: []models.AddressInput{
			{
				AddressID: &ashaAddrID,
				Label:     "Hijack",
				City:      "Elsewhere",
				CountryID: 1,
				StateID:   10,
			},
		},
	}
	// referencing someone else's address matches zero rows; not an error
	require.NoError(t, svc.UpdateProfile(context.Background(), intruderID, req))

	intruderView, err := svc.GetProfile(context.Background(), intruderID)
	require.NoError(t, err)
	assert.Empty(t, intruderView.Addresses)

	ashaView, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, ashaView.Addresses, 1)
	assert.Equal(t, "Madurai", ashaView.Addresses[0].City)
	assert.Equal(t, "Home", ashaView.Addresses[0].Label)
}

func TestUpdateProfileFailureLeavesNoPartialState(t *testing.T) {
	svc, store, _ := newProfileFixture()
	userID, addrID := seedAsha(store)
	store.FailAfterAddressWrites(1)

	req := models.UpdateProfileRequest{
		FirstName: "Changed",
		Email:     "changed@example.com",
		ContactNo: "9876543210",
		Addresses: []models.AddressInput{
			{AddressID: &addrID, Label: "Home", City: "Chennai", CountryID: 1, StateID: 10},
			{Label: "Work", City: "Bengaluru", CountryID: 1, StateID: 11},
		},
	}
	err := svc.UpdateProfile(context.Background(), userID, req)
	require.Error(t, err)

	view, getErr := svc.GetProfile(context.Background(), userID)
	require.NoError(t, getErr)
	assert.Equal(t, "Asha", view.FirstName)
	assert.Equal(t, "asha@example.com", view.Email)
	require.Len(t, view.Addresses, 1)
	assert.Equal(t, "Madurai", view.Addresses[0].City)
}

func TestGetProfileEmptyAddressList(t *testing.T) {
	svc, store, _ := newProfileFixture()
	userID := store.SeedUser(models.User{
		FirstName: "Meera",
		Email:     "meera@example.com",
		ContactNo: "4445556666",
	})

	view, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, view.Addresses)
	assert.Empty(t, view.Addresses)
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc, _, _ := newProfileFixture()

	_, err := svc.GetProfile(context.Background(), 999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateProfileWithAddresses(t *testing.T) {
	svc, _, _ := newProfileFixture()

	userID, err := svc.CreateProfile(context.Background(), models.CreateProfileRequest{
		FirstName: "Asha",
		LastName:  "Raman",
		Email:     "asha@example.com",
		ContactNo: "9876543210",
		GenderID:  2,
		Password:  "s3cret-pw",
		Addresses: []models.AddressInput{
			{Label: "Home", City: "Madurai", CountryID: 1, StateID: 10},
		},
	})
	require.NoError(t, err)

	view, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", view.Email)
	require.Len(t, view.Addresses, 1)
	assert.Equal(t, "Madurai", view.Addresses[0].City)
}

func TestCreateProfileDuplicateEmail(t *testing.T) {
	svc, _, users := newProfileFixture()

	_, err := users.Create(context.Background(), &models.User{
		Email:     "asha@example.com",
		ContactNo: "9876543210",
	})
	require.NoError(t, err)

	_, err = svc.CreateProfile(context.Background(), models.CreateProfileRequest{
		FirstName: "Asha",
		LastName:  "Raman",
		Email:     "asha@example.com",
		ContactNo: "0001112222",
		Password:  "s3cret-pw",
	})
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestProfilePicUpsert(t *testing.T) {
	svc, _, _ := newProfileFixture()

	_, err := svc.GetProfilePic(context.Background(), 1)
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, svc.SaveProfilePic(context.Background(), 1, "uploads/1_a.png"))
	require.NoError(t, svc.SaveProfilePic(context.Background(), 1, "uploads/1_b.png"))

	pic, err := svc.GetProfilePic(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "uploads/1_b.png", pic.FilePath)
}
