package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Daison12121/bella-vista-restaurant/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// Get returns the snapshot for a session, or nil when none has been saved yet.
func (r *CartRepository) Get(sessionID string) (*entity.CartSnapshot, error) {
	var snap entity.CartSnapshot
	err := r.DB.Where("session_id = ?", sessionID).First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Save upserts the single snapshot record of a session.
func (r *CartRepository) Save(sessionID, payload string) error {
	var snap entity.CartSnapshot
	err := r.DB.Where("session_id = ?", sessionID).First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		snap = entity.CartSnapshot{SessionID: sessionID, Payload: payload}
		return r.DB.Create(&snap).Error
	}
	if err != nil {
		return err
	}
	snap.Payload = payload
	return r.DB.Save(&snap).Error
}

func (r *CartRepository) Delete(sessionID string) error {
	return r.DB.Where("session_id = ?", sessionID).Delete(&entity.CartSnapshot{}).Error
}
