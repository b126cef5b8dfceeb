package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/Daison12121/bella-vista-restaurant/repository"
)

// cartSnapshotVersion tags the persisted payload so its shape can change
// across deployments without silently corrupting old carts.
const cartSnapshotVersion = 1

type cartSnapshot struct {
	Version     int          `json:"version"`
	Items       []CartLine   `json:"items"`
	TableNumber string       `json:"tableNumber"`
	Customer    CustomerInfo `json:"customerInfo"`
}

// CartService owns every live cart, keyed by the opaque session id from the
// cart cookie. Mutations run under one lock and are written through to the
// snapshot table so a cart survives restarts and page reloads. A failed
// write-through never fails the mutation: the in-memory cart stays
// authoritative and the error is logged.
type CartService struct {
	Repo *repository.CartRepository

	mu    sync.Mutex
	carts map[string]*Cart
}

func NewCartService(repo *repository.CartRepository) *CartService {
	return &CartService{Repo: repo, carts: make(map[string]*Cart)}
}

// cart returns the live cart for a session, restoring it from the durable
// snapshot on first touch. Callers must hold s.mu.
func (s *CartService) cart(sessionID string) *Cart {
	if c, ok := s.carts[sessionID]; ok {
		return c
	}

	c := NewCart()
	snap, err := s.Repo.Get(sessionID)
	if err != nil {
		log.Printf("cart: load snapshot for %s: %v", sessionID, err)
	} else if snap != nil {
		if restored, err := decodeCartSnapshot(snap.Payload); err != nil {
			log.Printf("cart: corrupt snapshot for %s: %v", sessionID, err)
		} else {
			c = restored
		}
	}

	s.carts[sessionID] = c
	return c
}

func (s *CartService) persist(sessionID string, c *Cart) {
	payload, err := json.Marshal(cartSnapshot{
		Version:     cartSnapshotVersion,
		Items:       c.Items,
		TableNumber: c.TableNumber,
		Customer:    c.Customer,
	})
	if err != nil {
		log.Printf("cart: encode snapshot for %s: %v", sessionID, err)
		return
	}
	if err := s.Repo.Save(sessionID, string(payload)); err != nil {
		log.Printf("cart: save snapshot for %s: %v", sessionID, err)
	}
}

// decodeCartSnapshot parses a persisted payload, migrating older versions
// to the current shape. Version 0 is the pre-versioning layout with the
// same field names, so migration only has to accept it and re-tag; any
// newer version has an unknown shape and must not be parsed as this one.
func decodeCartSnapshot(payload string) (*Cart, error) {
	var snap cartSnapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return nil, err
	}
	switch snap.Version {
	case 0, cartSnapshotVersion:
	default:
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}

	c := NewCart()
	if snap.Items != nil {
		c.Items = snap.Items
	}
	c.TableNumber = snap.TableNumber
	c.Customer = snap.Customer
	return c, nil
}

// ---------------- operations ----------------

// CartView is the cart plus its derived aggregates, as the UI consumes it.
type CartView struct {
	Items       []CartLine   `json:"items"`
	TableNumber string       `json:"tableNumber"`
	Customer    CustomerInfo `json:"customerInfo"`
	TotalPrice  int64        `json:"totalPrice"`
	TotalItems  int          `json:"totalItems"`
}

func cartView(c *Cart) CartView {
	items := make([]CartLine, len(c.Items))
	copy(items, c.Items)
	return CartView{
		Items:       items,
		TableNumber: c.TableNumber,
		Customer:    c.Customer,
		TotalPrice:  c.TotalPrice(),
		TotalItems:  c.TotalItems(),
	}
}

func (s *CartService) Get(sessionID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartView(s.cart(sessionID))
}

func (s *CartService) AddItem(sessionID string, d DishRef) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.AddItem(d)
	s.persist(sessionID, c)
	return cartView(c)
}

func (s *CartService) RemoveItem(sessionID string, dishID uint) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.RemoveItem(dishID)
	s.persist(sessionID, c)
	return cartView(c)
}

func (s *CartService) UpdateQuantity(sessionID string, dishID uint, quantity int) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.UpdateQuantity(dishID, quantity)
	s.persist(sessionID, c)
	return cartView(c)
}

func (s *CartService) UpdateNotes(sessionID string, dishID uint, notes string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.UpdateNotes(dishID, notes)
	s.persist(sessionID, c)
	return cartView(c)
}

func (s *CartService) SetTableNumber(sessionID, number string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.SetTableNumber(number)
	s.persist(sessionID, c)
	return cartView(c)
}

func (s *CartService) SetCustomerInfo(sessionID string, info CustomerInfo) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.SetCustomerInfo(info)
	s.persist(sessionID, c)
	return cartView(c)
}

func (s *CartService) Clear(sessionID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.Clear()
	s.persist(sessionID, c)
	// an empty cart is not worth caching; the snapshot restores it on the
	// next touch, so the map does not grow with every finished session
	delete(s.carts, sessionID)
	return cartView(c)
}

// Snapshot hands the order workflow a deep copy it can read without holding
// the cart lock across the database write.
func (s *CartService) Snapshot(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).clone()
}
