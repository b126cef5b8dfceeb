package repository

import (
	"gorm.io/gorm"

	"github.com/Daison12121/bella-vista-restaurant/entity"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

// ListForDish returns reviews for one dish, optionally only approved ones.
func (r *ReviewRepository) ListForDish(dishID uint, approvedOnly bool) ([]entity.Review, error) {
	q := r.DB.Where("dish_id = ?", dishID)
	if approvedOnly {
		q = q.Where("is_approved = ?", true)
	}
	var reviews []entity.Review
	err := q.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Create(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}

func (r *ReviewRepository) Approve(id uint) error {
	return r.DB.Model(&entity.Review{}).Where("id = ?", id).Update("is_approved", true).Error
}
