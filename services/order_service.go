package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Daison12121/bella-vista-restaurant/entity"
	"github.com/Daison12121/bella-vista-restaurant/repository"
)

// Validation failures are caught before anything is written; remote
// failures come back from the database with the transaction rolled back.
var (
	ErrValidation        = errors.New("validation")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// noTableLabel is stored when the guest checked out without picking a table.
const noTableLabel = "no table"

// OrderPublisher receives order lifecycle events; the ws hub implements it.
type OrderPublisher interface {
	OrderCreated(o *entity.Order)
	OrderStatusChanged(orderID uint, status string)
}

type OrderService struct {
	DB     *gorm.DB
	Repo   *repository.OrderRepository
	Tables *repository.TableRepository
	Carts  *CartService
	Events OrderPublisher // optional
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	tables *repository.TableRepository,
	carts *CartService,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, Tables: tables, Carts: carts}
}

type SubmitResult struct {
	OrderID uint  `json:"orderId"`
	Total   int64 `json:"total"`
}

// SubmitFromCart commits the session's cart as a persisted order.
//
// The order header and its line items are written in one transaction:
// either the whole order exists afterwards or nothing does. On commit the
// cart is cleared; on any failure it is left untouched so the guest can
// retry without re-entering items.
func (s *OrderService) SubmitFromCart(sessionID, orderNotes string) (*SubmitResult, error) {
	cart := s.Carts.Snapshot(sessionID)

	if cart.Customer.Name == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if cart.Customer.Phone == "" {
		return nil, fmt.Errorf("%w: customer phone is required", ErrValidation)
	}
	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	// The total is always recomputed from the snapshot, never taken from
	// anything the client sent.
	total := cart.TotalPrice()

	tableLabel := cart.TableNumber
	if tableLabel == "" {
		tableLabel = noTableLabel
	}

	var order entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// An unknown label is fine: the order is just not linked to a table.
		table, err := s.Tables.FindByNumber(cart.TableNumber)
		if err != nil {
			return err
		}
		var tableID *uint
		if table != nil {
			tableID = &table.ID
		}

		order = entity.Order{
			CustomerName:  cart.Customer.Name,
			CustomerPhone: cart.Customer.Phone,
			TableLabel:    tableLabel,
			TableID:       tableID,
			Status:        entity.StatusPending,
			TotalAmount:   total,
			Notes:         orderNotes,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		items := make([]entity.OrderItem, 0, len(cart.Items))
		for _, it := range cart.Items {
			items = append(items, entity.OrderItem{
				OrderID:   order.ID,
				DishID:    it.DishID,
				Quantity:  it.Quantity,
				UnitPrice: it.Price,
				Notes:     it.Notes,
			})
		}
		return s.Repo.CreateOrderItems(tx, items)
	})
	if err != nil {
		return nil, err
	}

	s.Carts.Clear(sessionID)
	if s.Events != nil {
		s.Events.OrderCreated(&order)
	}
	return &SubmitResult{OrderID: order.ID, Total: total}, nil
}

// ---------------- admin side ----------------

func (s *OrderService) List(status string, limit int) ([]entity.Order, error) {
	if status != "" && !entity.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.Repo.List(status, limit)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

// UpdateStatus moves an order along the lifecycle. The update is guarded by
// the current status, so two racing admins cannot double-apply a move.
func (s *OrderService) UpdateStatus(orderID uint, to string) error {
	if !entity.IsValidStatus(to) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, to)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}
		if !entity.CanTransition(o.Status, to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.Events != nil {
		s.Events.OrderStatusChanged(orderID, to)
	}
	return nil
}

// ---------------- dashboard ----------------

type Dashboard struct {
	TodayRevenue  int64                    `json:"todayRevenue"`
	TodayOrders   int64                    `json:"todayOrders"`
	WeekRevenue   int64                    `json:"weekRevenue"`
	WeekOrders    int64                    `json:"weekOrders"`
	PopularDishes []repository.PopularDish `json:"popularDishes"`
}

// GetDashboard aggregates completed-order revenue for today and the last
// seven days, plus the week's most ordered dishes.
func (s *OrderService) GetDashboard(now time.Time) (*Dashboard, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)

	d := &Dashboard{}
	var err error
	if d.TodayRevenue, d.TodayOrders, err = s.Repo.RevenueSince(today); err != nil {
		return nil, err
	}
	if d.WeekRevenue, d.WeekOrders, err = s.Repo.RevenueSince(weekAgo); err != nil {
		return nil, err
	}
	if d.PopularDishes, err = s.Repo.PopularDishes(weekAgo, 10); err != nil {
		return nil, err
	}
	return d, nil
}
