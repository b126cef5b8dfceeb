package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	CookTime    string `json:"cookTime"`

	IsPopular     bool `json:"isPopular"`
	IsVegetarian  bool `json:"isVegetarian"`
	IsSpicy       bool `json:"isSpicy"`
	IsChefSpecial bool `json:"isChefSpecial"`
	IsAvailable   bool `json:"isAvailable" gorm:"default:true"`
	IsStopped     bool `json:"isStopped"`
	SortOrder     int  `json:"sortOrder"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only on detail/search

	Ingredients []Ingredient `json:"-" gorm:"many2many:dish_ingredients;"`
	Reviews     []Review     `json:"-"`
	OrderItems  []OrderItem  `json:"-"`
}
