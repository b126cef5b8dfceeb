package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Daison12121/bella-vista-restaurant/pkg/resp"
	"github.com/Daison12121/bella-vista-restaurant/services"
	"github.com/Daison12121/bella-vista-restaurant/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /cart/checkout — the one call behind the order button. The response
// body always carries success plus either the order id or the reason, so
// the cart UI can render either without inspecting status codes.
func (h *OrderController) Checkout(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var req struct {
		Notes string `json:"notes"`
	}
	// body is optional; an empty checkout note is fine
	_ = c.ShouldBindJSON(&req)

	result, err := h.Svc.SubmitFromCart(sid, req.Notes)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrValidation) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"orderId": result.OrderID,
		"total":   result.Total,
	})
}

// GET /admin/orders?status=&limit=
func (h *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	orders, err := h.Svc.List(c.Query("status"), limit)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /admin/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	detail, err := h.Svc.Detail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}

// PATCH /admin/orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateStatus(uint(id), req.Status); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}

// GET /admin/analytics
func (h *OrderController) Analytics(c *gin.Context) {
	d, err := h.Svc.GetDashboard(time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, d)
}
