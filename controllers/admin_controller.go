package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Daison12121/bella-vista-restaurant/entity"
	"github.com/Daison12121/bella-vista-restaurant/pkg/resp"
	"github.com/Daison12121/bella-vista-restaurant/services"
)

// AdminController covers the management panel: category/dish/ingredient
// CRUD, status toggles and review approval.
type AdminController struct {
	Catalog *services.CatalogService
	Reviews *services.ReviewService
}

func NewAdminController(catalog *services.CatalogService, reviews *services.ReviewService) *AdminController {
	return &AdminController{Catalog: catalog, Reviews: reviews}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// ===== Categories =====

type categoryIn struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl"`
	ColorGradient string `json:"colorGradient"`
	SortOrder     int    `json:"sortOrder"`
	IsActive      *bool  `json:"isActive"`
}

// GET /admin/categories
func (h *AdminController) Categories(c *gin.Context) {
	cats, err := h.Catalog.ListAllCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// POST /admin/categories
func (h *AdminController) CreateCategory(c *gin.Context) {
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.Category{
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		ColorGradient: req.ColorGradient,
		SortOrder:     req.SortOrder,
		IsActive:      true,
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}
	if err := h.Catalog.CreateCategory(&cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /admin/categories/:id
func (h *AdminController) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := h.Catalog.Categories.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	cat.Name = req.Name
	cat.Description = req.Description
	cat.ImageURL = req.ImageURL
	cat.ColorGradient = req.ColorGradient
	cat.SortOrder = req.SortOrder
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}
	if err := h.Catalog.UpdateCategory(cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /admin/categories/:id
func (h *AdminController) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteCategory(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// PATCH /admin/categories/:id/toggle
func (h *AdminController) ToggleCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	active, err := h.Catalog.ToggleCategory(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"isActive": active})
}

// ===== Dishes =====

type dishIn struct {
	CategoryID    uint   `json:"categoryId" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Price         int64  `json:"price" binding:"min=0"`
	ImageURL      string `json:"imageUrl"`
	CookTime      string `json:"cookTime"`
	IsPopular     bool   `json:"isPopular"`
	IsVegetarian  bool   `json:"isVegetarian"`
	IsSpicy       bool   `json:"isSpicy"`
	IsChefSpecial bool   `json:"isChefSpecial"`
	IsAvailable   *bool  `json:"isAvailable"`
	IsStopped     *bool  `json:"isStopped"`
	SortOrder     int    `json:"sortOrder"`
	IngredientIDs []uint `json:"ingredientIds"`
}

// GET /admin/dishes
func (h *AdminController) Dishes(c *gin.Context) {
	dishes, err := h.Catalog.ListAllDishes()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": dishes})
}

// POST /admin/dishes
func (h *AdminController) CreateDish(c *gin.Context) {
	var req dishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dish := entity.Dish{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		CookTime:      req.CookTime,
		IsPopular:     req.IsPopular,
		IsVegetarian:  req.IsVegetarian,
		IsSpicy:       req.IsSpicy,
		IsChefSpecial: req.IsChefSpecial,
		IsAvailable:   true,
		SortOrder:     req.SortOrder,
	}
	if req.IsAvailable != nil {
		dish.IsAvailable = *req.IsAvailable
	}
	if req.IsStopped != nil {
		dish.IsStopped = *req.IsStopped
	}
	if err := h.Catalog.CreateDish(&dish, req.IngredientIDs); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, dish)
}

// PATCH /admin/dishes/:id
func (h *AdminController) UpdateDish(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dish, err := h.Catalog.Dishes.FindRow(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	dish.CategoryID = req.CategoryID
	dish.Name = req.Name
	dish.Description = req.Description
	dish.Price = req.Price
	dish.ImageURL = req.ImageURL
	dish.CookTime = req.CookTime
	dish.IsPopular = req.IsPopular
	dish.IsVegetarian = req.IsVegetarian
	dish.IsSpicy = req.IsSpicy
	dish.IsChefSpecial = req.IsChefSpecial
	dish.SortOrder = req.SortOrder
	if req.IsAvailable != nil {
		dish.IsAvailable = *req.IsAvailable
	}
	if req.IsStopped != nil {
		dish.IsStopped = *req.IsStopped
	}
	if err := h.Catalog.UpdateDish(dish, req.IngredientIDs); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dish)
}

// DELETE /admin/dishes/:id
func (h *AdminController) DeleteDish(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteDish(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// PATCH /admin/dishes/:id/toggle?field=is_stopped|is_available
func (h *AdminController) ToggleDish(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	field := c.DefaultQuery("field", "is_stopped")
	if field != "is_stopped" && field != "is_available" {
		resp.BadRequest(c, "field must be is_stopped or is_available")
		return
	}

	value, err := h.Catalog.ToggleDish(id, field)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{field: value})
}

// ===== Ingredients =====

// POST /admin/ingredients
func (h *AdminController) CreateIngredient(c *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		IsAllergen bool   `json:"isAllergen"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ing := entity.Ingredient{Name: req.Name, IsAllergen: req.IsAllergen}
	if err := h.Catalog.CreateIngredient(&ing); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, ing)
}

// DELETE /admin/ingredients/:id
func (h *AdminController) DeleteIngredient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteIngredient(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ===== Reviews =====

// PATCH /admin/reviews/:id/approve
func (h *AdminController) ApproveReview(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Reviews.Approve(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"approved": id})
}
