package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	tomYum  = DishRef{ID: 1, Name: "Tom Yum", Price: 100, ImageURL: "/img/tom-yum.jpg"}
	padThai = DishRef{ID: 2, Name: "Pad Thai", Price: 50}
)

func TestAddItemMergesSameDish(t *testing.T) {
	c := NewCart()

	c.AddItem(tomYum)
	c.AddItem(tomYum)
	c.AddItem(tomYum)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, uint(1), c.Items[0].DishID)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	c := NewCart()

	c.AddItem(tomYum)
	c.AddItem(padThai)
	c.AddItem(tomYum)

	assert.Equal(t, uint(1), c.Items[0].DishID)
	assert.Equal(t, uint(2), c.Items[1].DishID)
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	c := NewCart()
	c.AddItem(tomYum)

	changed := tomYum
	changed.Price = 999
	c.AddItem(changed)

	// the line keeps the price from when the dish was first added
	assert.Equal(t, int64(100), c.Items[0].Price)
}

func TestRemoveItem(t *testing.T) {
	c := NewCart()
	c.AddItem(tomYum)
	c.AddItem(padThai)

	c.RemoveItem(1)
	assert.Len(t, c.Items, 1)
	assert.Equal(t, uint(2), c.Items[0].DishID)

	// removing an absent dish is a no-op
	c.RemoveItem(42)
	assert.Len(t, c.Items, 1)
}

func TestUpdateQuantityFloor(t *testing.T) {
	c := NewCart()
	c.AddItem(tomYum)

	c.UpdateQuantity(1, 5)
	assert.Equal(t, 5, c.Items[0].Quantity)

	c.UpdateQuantity(1, 0)
	assert.Empty(t, c.Items)

	c.AddItem(tomYum)
	c.UpdateQuantity(1, -3)
	assert.Empty(t, c.Items)
}

func TestUpdateNotes(t *testing.T) {
	c := NewCart()
	c.AddItem(tomYum)

	c.UpdateNotes(1, "no cilantro")
	assert.Equal(t, "no cilantro", c.Items[0].Notes)

	// absent dish: no-op, no new line
	c.UpdateNotes(42, "extra spicy")
	assert.Len(t, c.Items, 1)
}

func TestTotals(t *testing.T) {
	c := NewCart()
	assert.Equal(t, int64(0), c.TotalPrice())
	assert.Equal(t, 0, c.TotalItems())

	c.AddItem(tomYum)
	c.AddItem(tomYum)
	c.AddItem(padThai)

	assert.Equal(t, int64(250), c.TotalPrice())
	assert.Equal(t, 3, c.TotalItems())

	c.UpdateQuantity(2, 4)
	assert.Equal(t, int64(400), c.TotalPrice())
	assert.Equal(t, 6, c.TotalItems())
}

func TestClearResetsEverything(t *testing.T) {
	c := NewCart()
	c.AddItem(tomYum)
	c.SetTableNumber("T3")
	c.SetCustomerInfo(CustomerInfo{Name: "Anna", Phone: "+7 900 000 00 00"})

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Equal(t, "", c.TableNumber)
	assert.Equal(t, CustomerInfo{}, c.Customer)
	assert.Equal(t, int64(0), c.TotalPrice())
}

func TestCloneIsIndependent(t *testing.T) {
	c := NewCart()
	c.AddItem(tomYum)

	snap := c.clone()
	c.UpdateQuantity(1, 10)

	assert.Equal(t, 1, snap.Items[0].Quantity)
	assert.Equal(t, 10, c.Items[0].Quantity)
}
