package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Hub управляет всеми подключёнными клиентами и рассылкой сообщений.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	Register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		Register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug("Клиент подключён к websocket", zap.String("userID", client.UserID))
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.logger.Debug("Клиент отключён от websocket", zap.String("userID", client.UserID))
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Медленный клиент: не блокируем рассылку.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast отправляет конверт всем подключённым клиентам.
func (h *Hub) Broadcast(envelope Envelope) {
	envelope.Timestamp = time.Now()
	data, err := json.Marshal(envelope)
	if err != nil {
		h.logger.Error("Не удалось сериализовать websocket-сообщение", zap.Error(err))
		return
	}
	h.broadcast <- data
}
