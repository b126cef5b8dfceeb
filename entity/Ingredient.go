package entity

import (
	"gorm.io/gorm"
)

type Ingredient struct {
	gorm.Model
	Name       string `json:"name"`
	IsAllergen bool   `json:"isAllergen"`

	Dishes []Dish `json:"-" gorm:"many2many:dish_ingredients;"`
}
