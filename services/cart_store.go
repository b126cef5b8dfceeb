package services

// CartLine is one dish in a cart. Price is snapshotted when the dish is
// added and does not follow later catalog edits.
type CartLine struct {
	DishID   uint   `json:"dishId"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl,omitempty"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Cart holds one session's cart state: insertion-ordered line items, the
// chosen table and the customer contact fields. Not safe for concurrent
// use on its own; CartService serializes access per session.
type Cart struct {
	Items       []CartLine   `json:"items"`
	TableNumber string       `json:"tableNumber"`
	Customer    CustomerInfo `json:"customerInfo"`
}

func NewCart() *Cart {
	return &Cart{Items: []CartLine{}}
}

// DishRef is what AddItem needs to know about a dish.
type DishRef struct {
	ID       uint
	Name     string
	Price    int64
	ImageURL string
}

// AddItem appends the dish with quantity 1, or bumps the quantity when the
// same dish is already in the cart. Never fails.
func (c *Cart) AddItem(d DishRef) {
	for i := range c.Items {
		if c.Items[i].DishID == d.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartLine{
		DishID:   d.ID,
		Name:     d.Name,
		Price:    d.Price,
		ImageURL: d.ImageURL,
		Quantity: 1,
	})
}

// RemoveItem drops the line for a dish; absent ids are a no-op.
func (c *Cart) RemoveItem(dishID uint) {
	for i := range c.Items {
		if c.Items[i].DishID == dishID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity exactly; zero or below removes the line,
// so a persisted quantity is always >= 1.
func (c *Cart) UpdateQuantity(dishID uint, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(dishID)
		return
	}
	for i := range c.Items {
		if c.Items[i].DishID == dishID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// UpdateNotes sets the per-line note; absent ids are a no-op.
func (c *Cart) UpdateNotes(dishID uint, notes string) {
	for i := range c.Items {
		if c.Items[i].DishID == dishID {
			c.Items[i].Notes = notes
			return
		}
	}
}

func (c *Cart) SetTableNumber(number string) {
	c.TableNumber = number
}

func (c *Cart) SetCustomerInfo(info CustomerInfo) {
	c.Customer = info
}

// Clear resets items, table and customer info in one step, so no partially
// cleared cart is ever observable.
func (c *Cart) Clear() {
	c.Items = []CartLine{}
	c.TableNumber = ""
	c.Customer = CustomerInfo{}
}

func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

func (c *Cart) TotalItems() int {
	var n int
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// clone returns a deep copy, used to snapshot the cart for checkout.
func (c *Cart) clone() *Cart {
	cp := *c
	cp.Items = make([]CartLine, len(c.Items))
	copy(cp.Items, c.Items)
	return &cp
}
