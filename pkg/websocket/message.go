package websocket

import "time"

// Типы конвертов, которые понимает фронтенд.
const (
	TypeRefresh = "refresh"
	TypeMessage = "messenger_message"
)

// Envelope — это "конверт", в котором мы отправляем сообщения клиентам.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// RefreshPayload сообщает представлению, что коллекции надо перечитать.
type RefreshPayload struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Action     string `json:"action"`
}
