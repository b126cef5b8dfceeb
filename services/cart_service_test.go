package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daison12121/bella-vista-restaurant/repository"
)

func TestCartSurvivesServiceRestart(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCartRepository(db)

	svc := NewCartService(repo)
	svc.AddItem("sess-1", tomYum)
	svc.AddItem("sess-1", tomYum)
	svc.SetTableNumber("sess-1", "T2")
	svc.SetCustomerInfo("sess-1", CustomerInfo{Name: "Boris", Phone: "123"})

	// a fresh service over the same database plays the role of a reload
	restarted := NewCartService(repo)
	v := restarted.Get("sess-1")

	require.Len(t, v.Items, 1)
	assert.Equal(t, 2, v.Items[0].Quantity)
	assert.Equal(t, "T2", v.TableNumber)
	assert.Equal(t, "Boris", v.Customer.Name)
	assert.Equal(t, int64(200), v.TotalPrice)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	svc := NewCartService(repository.NewCartRepository(newTestDB(t)))

	svc.AddItem("sess-a", tomYum)
	svc.AddItem("sess-b", padThai)

	a := svc.Get("sess-a")
	b := svc.Get("sess-b")
	require.Len(t, a.Items, 1)
	require.Len(t, b.Items, 1)
	assert.Equal(t, uint(1), a.Items[0].DishID)
	assert.Equal(t, uint(2), b.Items[0].DishID)
}

func TestLoadsLegacySnapshotWithoutVersion(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCartRepository(db)

	// pre-versioning payload shape: same fields, no version tag
	legacy := `{"items":[{"dishId":7,"name":"Borscht","price":120,"quantity":2}],"tableNumber":"T5","customerInfo":{"name":"Ira","phone":"555"}}`
	require.NoError(t, repo.Save("old-sess", legacy))

	svc := NewCartService(repo)
	v := svc.Get("old-sess")

	require.Len(t, v.Items, 1)
	assert.Equal(t, uint(7), v.Items[0].DishID)
	assert.Equal(t, "T5", v.TableNumber)
	assert.Equal(t, "Ira", v.Customer.Name)

	// the next mutation re-persists under the current version
	svc.AddItem("old-sess", tomYum)
	snap, err := repo.Get("old-sess")
	require.NoError(t, err)
	assert.Contains(t, snap.Payload, `"version":1`)
}

func TestCorruptSnapshotFallsBackToEmptyCart(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCartRepository(db)
	require.NoError(t, repo.Save("bad-sess", "{not json"))

	svc := NewCartService(repo)
	v := svc.Get("bad-sess")
	assert.Empty(t, v.Items)
	assert.Equal(t, 0, v.TotalItems)
}

func TestFutureSnapshotVersionFallsBackToEmptyCart(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCartRepository(db)

	// a payload from a newer deployment may have a different shape, so it
	// must not be parsed as the current layout
	future := `{"version":2,"items":[{"dishId":7,"name":"Borscht","price":120,"quantity":2}]}`
	require.NoError(t, repo.Save("new-sess", future))

	svc := NewCartService(repo)
	v := svc.Get("new-sess")
	assert.Empty(t, v.Items)
	assert.Equal(t, 0, v.TotalItems)
}

func TestClearEvictsCachedCart(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCartRepository(db)

	svc := NewCartService(repo)
	svc.AddItem("sess-1", tomYum)
	svc.AddItem("sess-2", padThai)
	require.Len(t, svc.carts, 2)

	svc.Clear("sess-1")
	assert.Len(t, svc.carts, 1)

	// the snapshot still answers for the evicted session
	v := svc.Get("sess-1")
	assert.Empty(t, v.Items)
	assert.Equal(t, CustomerInfo{}, v.Customer)
}

func TestClearPersistsEmptyState(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCartRepository(db)

	svc := NewCartService(repo)
	svc.AddItem("sess-1", tomYum)
	svc.SetTableNumber("sess-1", "T1")
	svc.Clear("sess-1")

	restarted := NewCartService(repo)
	v := restarted.Get("sess-1")
	assert.Empty(t, v.Items)
	assert.Equal(t, "", v.TableNumber)
	assert.Equal(t, CustomerInfo{}, v.Customer)
}
