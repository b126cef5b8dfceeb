package repository

import (
	"gorm.io/gorm"

	"github.com/Daison12121/bella-vista-restaurant/entity"
)

type DishRepository struct{ DB *gorm.DB }

func NewDishRepository(db *gorm.DB) *DishRepository { return &DishRepository{DB: db} }

// SearchParams mirrors the public search form: free text plus flag and
// price filters. Zero values mean "not filtered".
type SearchParams struct {
	Query      string
	Vegetarian bool
	Spicy      bool
	Popular    bool
	CategoryID uint
	MinPrice   int64
	MaxPrice   int64
}

// visible limits a query to dishes a guest may order.
func visible(db *gorm.DB) *gorm.DB {
	return db.Where("is_available = ? AND is_stopped = ?", true, false)
}

// ListByCategory backs the public category page: orderable dishes with
// category, ingredients and approved reviews preloaded.
func (r *DishRepository) ListByCategory(categoryID uint) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := visible(r.DB.Where("category_id = ?", categoryID)).
		Preload("Category").
		Preload("Ingredients").
		Preload("Reviews", "is_approved = ?", true).
		Order("sort_order ASC").
		Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) ListAll() ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.
		Preload("Category").
		Preload("Ingredients").
		Preload("Reviews").
		Order("category_id ASC").Order("sort_order ASC").
		Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) Search(p SearchParams) ([]entity.Dish, error) {
	q := visible(r.DB.Model(&entity.Dish{}))

	if p.Query != "" {
		like := "%" + p.Query + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if p.Vegetarian {
		q = q.Where("is_vegetarian = ?", true)
	}
	if p.Spicy {
		q = q.Where("is_spicy = ?", true)
	}
	if p.Popular {
		q = q.Where("is_popular = ?", true)
	}
	if p.CategoryID != 0 {
		q = q.Where("category_id = ?", p.CategoryID)
	}
	if p.MinPrice > 0 {
		q = q.Where("price >= ?", p.MinPrice)
	}
	if p.MaxPrice > 0 {
		q = q.Where("price <= ?", p.MaxPrice)
	}

	var dishes []entity.Dish
	err := q.
		Preload("Category").
		Preload("Ingredients").
		Preload("Reviews", "is_approved = ?", true).
		Order("name ASC").
		Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var d entity.Dish
	err := r.DB.
		Preload("Category").
		Preload("Ingredients").
		Preload("Reviews", "is_approved = ?", true).
		First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FindRow loads the dish without relations, for admin edits.
func (r *DishRepository) FindRow(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

func (r *DishRepository) Update(d *entity.Dish) error {
	return r.DB.Save(d).Error
}

func (r *DishRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Dish{}, id).Error
}

// ReplaceIngredients rewires the dish_ingredients links wholesale, the way
// the admin form submits them.
func (r *DishRepository) ReplaceIngredients(dishID uint, ingredientIDs []uint) error {
	d := entity.Dish{Model: gorm.Model{ID: dishID}}

	if len(ingredientIDs) == 0 {
		return r.DB.Model(&d).Association("Ingredients").Clear()
	}

	ings := make([]entity.Ingredient, 0, len(ingredientIDs))
	for _, id := range ingredientIDs {
		ings = append(ings, entity.Ingredient{Model: gorm.Model{ID: id}})
	}
	return r.DB.Model(&d).Association("Ingredients").Replace(&ings)
}

// ToggleFlag flips is_available or is_stopped and returns the new value.
func (r *DishRepository) ToggleFlag(id uint, field string) (bool, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return false, err
	}

	var next bool
	switch field {
	case "is_available":
		next = !d.IsAvailable
	case "is_stopped":
		next = !d.IsStopped
	default:
		return false, gorm.ErrInvalidField
	}
	if err := r.DB.Model(&d).Update(field, next).Error; err != nil {
		return false, err
	}
	return next, nil
}
