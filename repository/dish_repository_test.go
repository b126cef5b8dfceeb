package repository

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Daison12121/bella-vista-restaurant/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Category{}, &entity.Dish{}, &entity.Ingredient{},
		&entity.Table{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
		&entity.CartSnapshot{},
	))
	return db
}

func seedSearchFixture(t *testing.T, db *gorm.DB) (soups, mains entity.Category) {
	t.Helper()

	soups = entity.Category{Name: "Soups", IsActive: true, SortOrder: 1}
	mains = entity.Category{Name: "Mains", IsActive: true, SortOrder: 2}
	require.NoError(t, db.Create(&soups).Error)
	require.NoError(t, db.Create(&mains).Error)

	dishes := []entity.Dish{
		{Name: "Tom Yum", Description: "spicy shrimp soup", Price: 100, CategoryID: soups.ID, IsAvailable: true, IsSpicy: true, IsPopular: true, SortOrder: 2},
		{Name: "Borscht", Description: "beet soup", Price: 80, CategoryID: soups.ID, IsAvailable: true, IsVegetarian: true, SortOrder: 1},
		{Name: "Steak", Description: "grilled beef", Price: 300, CategoryID: mains.ID, IsAvailable: true, SortOrder: 1},
		{Name: "Stopped Soup", Description: "off the stove", Price: 60, CategoryID: soups.ID, IsAvailable: true, IsStopped: true, SortOrder: 3},
		{Name: "Hidden Curry", Description: "not on menu", Price: 150, CategoryID: mains.ID, IsAvailable: false, SortOrder: 2},
	}
	for i := range dishes {
		require.NoError(t, db.Create(&dishes[i]).Error)
	}
	return soups, mains
}

func dishNames(dishes []entity.Dish) []string {
	names := make([]string, 0, len(dishes))
	for _, d := range dishes {
		names = append(names, d.Name)
	}
	return names
}

func TestListByCategoryHidesStoppedAndUnavailable(t *testing.T) {
	db := newTestDB(t)
	repo := NewDishRepository(db)
	soups, _ := seedSearchFixture(t, db)

	dishes, err := repo.ListByCategory(soups.ID)
	require.NoError(t, err)

	// sorted by sort_order, stopped dish excluded
	assert.Equal(t, []string{"Borscht", "Tom Yum"}, dishNames(dishes))
}

func TestSearchByText(t *testing.T) {
	db := newTestDB(t)
	repo := NewDishRepository(db)
	seedSearchFixture(t, db)

	dishes, err := repo.Search(SearchParams{Query: "soup"})
	require.NoError(t, err)

	// matches name or description, hides stopped/unavailable, sorts by name
	assert.Equal(t, []string{"Borscht", "Tom Yum"}, dishNames(dishes))
}

func TestSearchFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewDishRepository(db)
	soups, _ := seedSearchFixture(t, db)

	veg, err := repo.Search(SearchParams{Vegetarian: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Borscht"}, dishNames(veg))

	spicy, err := repo.Search(SearchParams{Spicy: true, CategoryID: soups.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tom Yum"}, dishNames(spicy))

	priced, err := repo.Search(SearchParams{MinPrice: 90, MaxPrice: 350})
	require.NoError(t, err)
	assert.Equal(t, []string{"Steak", "Tom Yum"}, dishNames(priced))

	popular, err := repo.Search(SearchParams{Popular: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tom Yum"}, dishNames(popular))
}

func TestSearchWithoutFiltersListsAllVisible(t *testing.T) {
	db := newTestDB(t)
	repo := NewDishRepository(db)
	seedSearchFixture(t, db)

	dishes, err := repo.Search(SearchParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Borscht", "Steak", "Tom Yum"}, dishNames(dishes))
}

func TestToggleFlag(t *testing.T) {
	db := newTestDB(t)
	repo := NewDishRepository(db)
	soups, _ := seedSearchFixture(t, db)

	var dish entity.Dish
	require.NoError(t, db.Where("name = ?", "Borscht").First(&dish).Error)

	stopped, err := repo.ToggleFlag(dish.ID, "is_stopped")
	require.NoError(t, err)
	assert.True(t, stopped)

	dishes, err := repo.ListByCategory(soups.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tom Yum"}, dishNames(dishes))

	_, err = repo.ToggleFlag(dish.ID, "name")
	assert.Error(t, err)
}

func TestCategoryOrderingAndActiveFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)

	require.NoError(t, db.Create(&entity.Category{Name: "Desserts", SortOrder: 3, IsActive: true}).Error)
	require.NoError(t, db.Create(&entity.Category{Name: "Starters", SortOrder: 1, IsActive: true}).Error)
	require.NoError(t, db.Create(&entity.Category{Name: "Archive", SortOrder: 2, IsActive: false}).Error)

	active, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Starters", active[0].Name)
	assert.Equal(t, "Desserts", active[1].Name)

	all, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestTableFindByNumber(t *testing.T) {
	db := newTestDB(t)
	repo := NewTableRepository(db)

	require.NoError(t, db.Create(&entity.Table{Number: "T1", Seats: 2, IsActive: true}).Error)

	found, err := repo.FindByNumber("T1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "T1", found.Number)

	missing, err := repo.FindByNumber("T42")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCartSnapshotUpsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)

	snap, err := repo.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, snap)

	require.NoError(t, repo.Save("s1", `{"version":1}`))
	require.NoError(t, repo.Save("s1", `{"version":1,"items":[]}`))

	snap, err = repo.Get("s1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, `{"version":1,"items":[]}`, snap.Payload)

	var n int64
	require.NoError(t, db.Model(&entity.CartSnapshot{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.Delete("s1"))
	snap, err = repo.Get("s1")
	require.NoError(t, err)
	assert.Nil(t, snap)
}
