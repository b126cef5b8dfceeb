package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name          string `json:"name"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl"`
	ColorGradient string `json:"colorGradient"`
	SortOrder     int    `json:"sortOrder"`
	IsActive      bool   `json:"isActive" gorm:"default:true"`

	Dishes []Dish `json:"-"`
}
