package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	IsApproved   bool   `json:"isApproved"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"`
}
