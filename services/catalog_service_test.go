package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Daison12121/bella-vista-restaurant/entity"
	"github.com/Daison12121/bella-vista-restaurant/repository"
)

func newCatalog(t *testing.T) (*gorm.DB, *CatalogService) {
	t.Helper()
	db := newTestDB(t)
	svc := NewCatalogService(
		repository.NewCategoryRepository(db),
		repository.NewDishRepository(db),
		repository.NewIngredientRepository(db),
		repository.NewTableRepository(db),
	)
	return db, svc
}

func TestDishViewAverageRating(t *testing.T) {
	db, svc := newCatalog(t)

	cat := entity.Category{Name: "Soups", IsActive: true}
	require.NoError(t, db.Create(&cat).Error)
	dish := entity.Dish{Name: "Borscht", Price: 120, CategoryID: cat.ID, IsAvailable: true}
	require.NoError(t, db.Create(&dish).Error)

	require.NoError(t, db.Create(&entity.Review{DishID: dish.ID, Rating: 5, IsApproved: true}).Error)
	require.NoError(t, db.Create(&entity.Review{DishID: dish.ID, Rating: 4, IsApproved: true}).Error)
	// unapproved reviews stay out of the public rating
	require.NoError(t, db.Create(&entity.Review{DishID: dish.ID, Rating: 1, IsApproved: false}).Error)

	v, err := svc.GetDish(dish.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soups", v.CategoryName)
	assert.Len(t, v.Reviews, 2)
	assert.InDelta(t, 4.5, v.AverageRating, 0.001)
}

func TestDishViewWithoutReviews(t *testing.T) {
	db, svc := newCatalog(t)

	cat := entity.Category{Name: "Soups", IsActive: true}
	require.NoError(t, db.Create(&cat).Error)
	dish := entity.Dish{Name: "Borscht", Price: 120, CategoryID: cat.ID, IsAvailable: true}
	require.NoError(t, db.Create(&dish).Error)

	v, err := svc.GetDish(dish.ID)
	require.NoError(t, err)
	assert.Zero(t, v.AverageRating)
	assert.NotNil(t, v.Reviews)
	assert.NotNil(t, v.Ingredients)
}

func TestCreateDishLinksIngredients(t *testing.T) {
	db, svc := newCatalog(t)

	cat := entity.Category{Name: "Salads", IsActive: true}
	require.NoError(t, db.Create(&cat).Error)
	tomato := entity.Ingredient{Name: "Tomato"}
	cheese := entity.Ingredient{Name: "Cheese"}
	require.NoError(t, db.Create(&tomato).Error)
	require.NoError(t, db.Create(&cheese).Error)

	dish := entity.Dish{Name: "Caprese", Price: 90, CategoryID: cat.ID, IsAvailable: true}
	require.NoError(t, svc.CreateDish(&dish, []uint{tomato.ID, cheese.ID}))

	v, err := svc.GetDish(dish.ID)
	require.NoError(t, err)
	require.Len(t, v.Ingredients, 2)

	// the update form replaces the links wholesale
	require.NoError(t, svc.UpdateDish(&dish, []uint{cheese.ID}))
	v, err = svc.GetDish(dish.ID)
	require.NoError(t, err)
	require.Len(t, v.Ingredients, 1)
	assert.Equal(t, "Cheese", v.Ingredients[0].Name)
}

func TestToggleCategoryFlipsActive(t *testing.T) {
	db, svc := newCatalog(t)

	cat := entity.Category{Name: "Drinks", IsActive: true}
	require.NoError(t, db.Create(&cat).Error)

	active, err := svc.ToggleCategory(cat.ID)
	require.NoError(t, err)
	assert.False(t, active)

	cats, err := svc.ListActiveCategories()
	require.NoError(t, err)
	assert.Empty(t, cats)

	active, err = svc.ToggleCategory(cat.ID)
	require.NoError(t, err)
	assert.True(t, active)
}
