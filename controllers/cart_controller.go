package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Daison12121/bella-vista-restaurant/pkg/resp"
	"github.com/Daison12121/bella-vista-restaurant/services"
	"github.com/Daison12121/bella-vista-restaurant/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

func dishIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("dishId"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid dish id")
		return 0, false
	}
	return uint(id), true
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	resp.OK(c, h.Svc.Get(sid))
}

// POST /cart/items
func (h *CartController) AddItem(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var req struct {
		DishID   uint   `json:"dishId" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Price    int64  `json:"price" binding:"min=0"`
		ImageURL string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	v := h.Svc.AddItem(sid, services.DishRef{
		ID: req.DishID, Name: req.Name, Price: req.Price, ImageURL: req.ImageURL,
	})
	resp.Created(c, v)
}

// PATCH /cart/items/:dishId — body carries either a quantity or a note
func (h *CartController) UpdateItem(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	dishID, ok := dishIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Quantity *int    `json:"quantity"`
		Notes    *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Quantity == nil && req.Notes == nil {
		resp.BadRequest(c, "quantity or notes is required")
		return
	}

	var v services.CartView
	if req.Quantity != nil {
		v = h.Svc.UpdateQuantity(sid, dishID, *req.Quantity)
	}
	if req.Notes != nil {
		v = h.Svc.UpdateNotes(sid, dishID, *req.Notes)
	}
	resp.OK(c, v)
}

// DELETE /cart/items/:dishId
func (h *CartController) RemoveItem(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	dishID, ok := dishIDParam(c)
	if !ok {
		return
	}
	resp.OK(c, h.Svc.RemoveItem(sid, dishID))
}

// PATCH /cart/table
func (h *CartController) SetTable(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var req struct {
		TableNumber string `json:"tableNumber"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, h.Svc.SetTableNumber(sid, req.TableNumber))
}

// PATCH /cart/customer
func (h *CartController) SetCustomer(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var req struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, h.Svc.SetCustomerInfo(sid, services.CustomerInfo{Name: req.Name, Phone: req.Phone}))
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	resp.OK(c, h.Svc.Clear(sid))
}
