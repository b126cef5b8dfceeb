package services

import (
	"github.com/Daison12121/bella-vista-restaurant/entity"
	"github.com/Daison12121/bella-vista-restaurant/repository"
)

type CatalogService struct {
	Categories  *repository.CategoryRepository
	Dishes      *repository.DishRepository
	Ingredients *repository.IngredientRepository
	Tables      *repository.TableRepository
}

func NewCatalogService(
	categories *repository.CategoryRepository,
	dishes *repository.DishRepository,
	ingredients *repository.IngredientRepository,
	tables *repository.TableRepository,
) *CatalogService {
	return &CatalogService{
		Categories:  categories,
		Dishes:      dishes,
		Ingredients: ingredients,
		Tables:      tables,
	}
}

// DishView is a dish with its loaded relations flattened for the menu UI.
type DishView struct {
	entity.Dish
	CategoryName  string              `json:"categoryName"`
	Ingredients   []entity.Ingredient `json:"ingredients"`
	Reviews       []entity.Review     `json:"reviews"`
	AverageRating float64             `json:"averageRating"`
}

func toDishView(d entity.Dish) DishView {
	v := DishView{
		Dish:         d,
		CategoryName: d.Category.Name,
		Ingredients:  d.Ingredients,
		Reviews:      d.Reviews,
	}
	if v.Ingredients == nil {
		v.Ingredients = []entity.Ingredient{}
	}
	if v.Reviews == nil {
		v.Reviews = []entity.Review{}
	}
	if len(d.Reviews) > 0 {
		var sum int
		for _, r := range d.Reviews {
			sum += r.Rating
		}
		v.AverageRating = float64(sum) / float64(len(d.Reviews))
	}
	return v
}

func toDishViews(dishes []entity.Dish) []DishView {
	out := make([]DishView, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, toDishView(d))
	}
	return out
}

// ---------------- public menu ----------------

func (s *CatalogService) ListActiveCategories() ([]entity.Category, error) {
	return s.Categories.ListActive()
}

func (s *CatalogService) DishesByCategory(categoryID uint) ([]DishView, error) {
	dishes, err := s.Dishes.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toDishViews(dishes), nil
}

func (s *CatalogService) SearchDishes(p repository.SearchParams) ([]DishView, error) {
	dishes, err := s.Dishes.Search(p)
	if err != nil {
		return nil, err
	}
	return toDishViews(dishes), nil
}

func (s *CatalogService) GetDish(id uint) (*DishView, error) {
	d, err := s.Dishes.FindByID(id)
	if err != nil {
		return nil, err
	}
	v := toDishView(*d)
	return &v, nil
}

func (s *CatalogService) ListIngredients() ([]entity.Ingredient, error) {
	return s.Ingredients.List()
}

func (s *CatalogService) ListTables() ([]entity.Table, error) {
	return s.Tables.List()
}

// ---------------- admin ----------------

func (s *CatalogService) ListAllCategories() ([]entity.Category, error) {
	return s.Categories.ListAll()
}

func (s *CatalogService) CreateCategory(c *entity.Category) error {
	return s.Categories.Create(c)
}

func (s *CatalogService) UpdateCategory(c *entity.Category) error {
	return s.Categories.Update(c)
}

func (s *CatalogService) DeleteCategory(id uint) error {
	return s.Categories.Delete(id)
}

func (s *CatalogService) ToggleCategory(id uint) (bool, error) {
	return s.Categories.ToggleActive(id)
}

func (s *CatalogService) ListAllDishes() ([]DishView, error) {
	dishes, err := s.Dishes.ListAll()
	if err != nil {
		return nil, err
	}
	return toDishViews(dishes), nil
}

// CreateDish stores the dish and its ingredient links.
func (s *CatalogService) CreateDish(d *entity.Dish, ingredientIDs []uint) error {
	if err := s.Dishes.Create(d); err != nil {
		return err
	}
	return s.Dishes.ReplaceIngredients(d.ID, ingredientIDs)
}

// UpdateDish saves the dish and rewires its ingredient links wholesale.
func (s *CatalogService) UpdateDish(d *entity.Dish, ingredientIDs []uint) error {
	if err := s.Dishes.Update(d); err != nil {
		return err
	}
	return s.Dishes.ReplaceIngredients(d.ID, ingredientIDs)
}

func (s *CatalogService) DeleteDish(id uint) error {
	return s.Dishes.Delete(id)
}

func (s *CatalogService) ToggleDish(id uint, field string) (bool, error) {
	return s.Dishes.ToggleFlag(id, field)
}

func (s *CatalogService) CreateIngredient(i *entity.Ingredient) error {
	return s.Ingredients.Create(i)
}

func (s *CatalogService) DeleteIngredient(id uint) error {
	return s.Ingredients.Delete(id)
}
