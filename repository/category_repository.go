package repository

import (
	"gorm.io/gorm"

	"github.com/Daison12121/bella-vista-restaurant/entity"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{DB: db} }

// ListActive backs the public menu page.
func (r *CategoryRepository) ListActive() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Where("is_active = ?", true).Order("sort_order ASC").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) ListAll() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("sort_order ASC").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Create(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *CategoryRepository) Update(c *entity.Category) error {
	return r.DB.Save(c).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

// ToggleActive flips is_active and returns the new value.
func (r *CategoryRepository) ToggleActive(id uint) (bool, error) {
	c, err := r.FindByID(id)
	if err != nil {
		return false, err
	}
	c.IsActive = !c.IsActive
	if err := r.DB.Model(c).Update("is_active", c.IsActive).Error; err != nil {
		return false, err
	}
	return c.IsActive, nil
}
