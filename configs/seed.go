package configs

import (
	"fmt"

	"github.com/Daison12121/bella-vista-restaurant/entity"
)

// SeedTables creates the physical tables once; re-running is a no-op.
func SeedTables() error {
	var cnt int64
	if err := db.Model(&entity.Table{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	for i := 1; i <= 8; i++ {
		t := entity.Table{Number: fmt.Sprintf("T%d", i), Seats: 4, IsActive: true}
		if err := db.Create(&t).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedCategories inserts the starter menu sections on an empty database.
func SeedCategories() error {
	var cnt int64
	if err := db.Model(&entity.Category{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	cats := []entity.Category{
		{Name: "Starters", SortOrder: 1, IsActive: true, ColorGradient: "from-amber-500 to-orange-600"},
		{Name: "Main Courses", SortOrder: 2, IsActive: true, ColorGradient: "from-red-500 to-rose-600"},
		{Name: "Desserts", SortOrder: 3, IsActive: true, ColorGradient: "from-pink-500 to-fuchsia-600"},
		{Name: "Drinks", SortOrder: 4, IsActive: true, ColorGradient: "from-sky-500 to-indigo-600"},
	}
	for i := range cats {
		if err := db.Create(&cats[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
