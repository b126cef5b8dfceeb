package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	Number   string `json:"number" gorm:"uniqueIndex"`
	QRCode   string `json:"qrCode"`
	Seats    int    `json:"seats"`
	IsActive bool   `json:"isActive" gorm:"default:true"`

	Orders []Order `json:"-"`
}
