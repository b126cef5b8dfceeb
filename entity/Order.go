package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	TableLabel    string `json:"tableLabel"`
	Status        string `json:"status" gorm:"default:pending"`
	TotalAmount   int64  `json:"totalAmount"`
	Notes         string `json:"notes"`

	// nil when no physical table matched the label at checkout time
	TableID *uint  `json:"tableId"`
	Table   *Table `json:"-"`

	Items []OrderItem `json:"items,omitempty"` // present when preloaded
}
