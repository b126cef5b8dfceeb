package repository

import (
	"gorm.io/gorm"

	"github.com/Daison12121/bella-vista-restaurant/entity"
)

type IngredientRepository struct{ DB *gorm.DB }

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{DB: db}
}

func (r *IngredientRepository) List() ([]entity.Ingredient, error) {
	var ings []entity.Ingredient
	err := r.DB.Order("name ASC").Find(&ings).Error
	return ings, err
}

func (r *IngredientRepository) Create(i *entity.Ingredient) error {
	return r.DB.Create(i).Error
}

func (r *IngredientRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Ingredient{}, id).Error
}
