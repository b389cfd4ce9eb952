package services

import (
	"context"

	"learning-portal/models"
)

type CourseService struct {
	store CourseStore
}

func NewCourseService(store CourseStore) *CourseService {
	return &CourseService{store: store}
}

func (s *CourseService) Catalogue(ctx context.Context) ([]models.Course, error) {
	return s.store.ListCourses(ctx)
}

func (s *CourseService) MyCourses(ctx context.Context, userID int) ([]models.UserCourse, error) {
	return s.store.ListByUser(ctx, userID)
}
