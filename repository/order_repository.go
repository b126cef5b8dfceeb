package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/Daison12121/bella-vista-restaurant/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// CreateOrderItems batch-inserts the line items of one order.
func (r *OrderRepository) CreateOrderItems(tx *gorm.DB, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Table").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Preload("Dish").
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// List returns orders newest first with their line items and dishes,
// optionally filtered by status.
func (r *OrderRepository) List(status string, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := r.DB.Preload("Table").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Dish")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []entity.Order
	err := q.Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard moves an order from one status to another only when the
// current status still matches; the affected row count tells the caller
// whether the transition won.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Analytics ----------------

// RevenueSince sums completed orders created at or after the cutoff.
func (r *OrderRepository) RevenueSince(since time.Time) (int64, int64, error) {
	var row struct {
		Revenue int64
		Count   int64
	}
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS count").
		Where("status = ? AND created_at >= ?", entity.StatusCompleted, since).
		Scan(&row).Error
	return row.Revenue, row.Count, err
}

type PopularDish struct {
	DishID   uint   `json:"dishId"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// PopularDishes ranks dishes by quantity ordered since the cutoff.
func (r *OrderRepository) PopularDishes(since time.Time, limit int) ([]PopularDish, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []PopularDish
	// raw table query: the soft-delete filter the model API adds for free
	// has to be spelled out here
	err := r.DB.Table("order_items AS oi").
		Select("oi.dish_id, d.name, SUM(oi.quantity) AS quantity").
		Joins("JOIN dishes d ON d.id = oi.dish_id").
		Where("oi.created_at >= ? AND oi.deleted_at IS NULL", since).
		Group("oi.dish_id, d.name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
