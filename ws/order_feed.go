package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Daison12121/bella-vista-restaurant/entity"
)

// OrderFeedHub pushes order lifecycle events to connected admin panels so
// new orders show up without polling.
type OrderFeedHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// OrderEvent is the wire format of one feed message.
type OrderEvent struct {
	Type         string `json:"type"` // "order_created" | "order_status"
	OrderID      uint   `json:"orderId"`
	Status       string `json:"status"`
	CustomerName string `json:"customerName,omitempty"`
	TableLabel   string `json:"tableLabel,omitempty"`
	TotalAmount  int64  `json:"totalAmount,omitempty"`
}

func NewOrderFeedHub() *OrderFeedHub {
	return &OrderFeedHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *OrderFeedHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderCreated implements services.OrderPublisher.
func (h *OrderFeedHub) OrderCreated(o *entity.Order) {
	h.broadcast <- OrderEvent{
		Type:         "order_created",
		OrderID:      o.ID,
		Status:       o.Status,
		CustomerName: o.CustomerName,
		TableLabel:   o.TableLabel,
		TotalAmount:  o.TotalAmount,
	}
}

// OrderStatusChanged implements services.OrderPublisher.
func (h *OrderFeedHub) OrderStatusChanged(orderID uint, status string) {
	h.broadcast <- OrderEvent{Type: "order_status", OrderID: orderID, Status: status}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/admin/orders
func (h *OrderFeedHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	h.register <- conn

	go h.drain(conn)
}

// drain keeps the read side alive until the client goes away; the feed is
// one-directional, so inbound payloads are discarded.
func (h *OrderFeedHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
