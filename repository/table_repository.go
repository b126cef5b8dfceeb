package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Daison12121/bella-vista-restaurant/entity"
)

type TableRepository struct{ DB *gorm.DB }

func NewTableRepository(db *gorm.DB) *TableRepository { return &TableRepository{DB: db} }

func (r *TableRepository) List() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("number ASC").Find(&tables).Error
	return tables, err
}

// FindByNumber resolves a table label to its record. A missing table is not
// an error: checkout stores NULL instead.
func (r *TableRepository) FindByNumber(number string) (*entity.Table, error) {
	var t entity.Table
	err := r.DB.Where("number = ?", number).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
