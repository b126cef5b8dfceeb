package services

import (
	"fmt"

	"github.com/Daison12121/bella-vista-restaurant/entity"
	"github.com/Daison12121/bella-vista-restaurant/repository"
)

type ReviewService struct {
	Repo *repository.ReviewRepository
}

func NewReviewService(repo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{Repo: repo}
}

func (s *ReviewService) ListApproved(dishID uint) ([]entity.Review, error) {
	return s.Repo.ListForDish(dishID, true)
}

// Create stores a guest review; it stays hidden until an admin approves it.
func (s *ReviewService) Create(dishID uint, customerName string, rating int, comment string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	rev := entity.Review{
		DishID:       dishID,
		CustomerName: customerName,
		Rating:       rating,
		Comment:      comment,
	}
	if err := s.Repo.Create(&rev); err != nil {
		return nil, err
	}
	return &rev, nil
}

func (s *ReviewService) Approve(id uint) error {
	return s.Repo.Approve(id)
}
