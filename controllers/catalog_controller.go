package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Daison12121/bella-vista-restaurant/pkg/resp"
	"github.com/Daison12121/bella-vista-restaurant/repository"
	"github.com/Daison12121/bella-vista-restaurant/services"
)

type CatalogController struct {
	Svc     *services.CatalogService
	Reviews *services.ReviewService
}

func NewCatalogController(svc *services.CatalogService, reviews *services.ReviewService) *CatalogController {
	return &CatalogController{Svc: svc, Reviews: reviews}
}

// GET /categories
func (h *CatalogController) Categories(c *gin.Context) {
	cats, err := h.Svc.ListActiveCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// GET /categories/:id/dishes
func (h *CatalogController) CategoryDishes(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid category id")
		return
	}

	dishes, err := h.Svc.DishesByCategory(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": dishes})
}

// GET /dishes/search
func (h *CatalogController) Search(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Query("categoryId"))
	minPrice, _ := strconv.ParseInt(c.Query("minPrice"), 10, 64)
	maxPrice, _ := strconv.ParseInt(c.Query("maxPrice"), 10, 64)

	p := repository.SearchParams{
		Query:      c.Query("q"),
		Vegetarian: c.Query("vegetarian") == "true",
		Spicy:      c.Query("spicy") == "true",
		Popular:    c.Query("popular") == "true",
		CategoryID: uint(categoryID),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
	}

	dishes, err := h.Svc.SearchDishes(p)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": dishes})
}

// GET /dishes/:id
func (h *CatalogController) Dish(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	dish, err := h.Svc.GetDish(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dish)
}

// GET /ingredients
func (h *CatalogController) Ingredients(c *gin.Context) {
	ings, err := h.Svc.ListIngredients()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": ings})
}

// GET /tables
func (h *CatalogController) Tables(c *gin.Context) {
	tables, err := h.Svc.ListTables()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": tables})
}

// GET /dishes/:id/reviews
func (h *CatalogController) DishReviews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	reviews, err := h.Reviews.ListApproved(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews})
}

// POST /dishes/:id/reviews
func (h *CatalogController) CreateReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	var req struct {
		CustomerName string `json:"customerName"`
		Rating       int    `json:"rating" binding:"required"`
		Comment      string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := h.Reviews.Create(uint(id), req.CustomerName, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, rev)
}
