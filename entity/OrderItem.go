package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Notes     string `json:"notes"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"dish"` // preloaded on the admin paths
}
