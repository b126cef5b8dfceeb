package entity

import (
	"gorm.io/gorm"
)

// CartSnapshot is the durable copy of one session's cart. The payload is a
// versioned JSON document owned by the cart service; nothing else writes it.
type CartSnapshot struct {
	gorm.Model
	SessionID string `json:"sessionId" gorm:"uniqueIndex"`
	Payload   string `json:"-"`
}
