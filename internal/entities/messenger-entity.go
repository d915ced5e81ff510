package entities

import "time"

type MessageDirection string

const (
	DirectionIncoming MessageDirection = "incoming"
	DirectionOutgoing MessageDirection = "outgoing"
)

// Conversation — переписка с клиентом в одном канале (например, WhatsApp).
// Ключ уникальности — пара клиент + канал.
type Conversation struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	Channel  string `json:"channel"`
}

func (c *Conversation) GetID() string   { return c.ID }
func (c *Conversation) SetID(id string) { c.ID = id }

type Message struct {
	ID             string           `json:"id"`
	ConversationID string           `json:"conversation_id"`
	Direction      MessageDirection `json:"direction"`
	Text           string           `json:"text"`
	CreatedAt      time.Time        `json:"created_at"`
}

func (m *Message) GetID() string   { return m.ID }
func (m *Message) SetID(id string) { m.ID = id }
