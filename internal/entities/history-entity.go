package entities

import "time"

type EntityType string

const (
	EntityClient        EntityType = "client"
	EntityContact       EntityType = "contact"
	EntityContract      EntityType = "contract"
	EntityDatabase      EntityType = "database"
	EntityTask          EntityType = "task"
	EntityQueue         EntityType = "queue"
	EntityQueueTemplate EntityType = "queue_template"
)

type ActionType string

const (
	ActionCreate   ActionType = "create"
	ActionUpdate   ActionType = "update"
	ActionDelete   ActionType = "delete"
	ActionComment  ActionType = "comment"
	ActionComplete ActionType = "complete"
)

// HistoryLog — запись журнала изменений. Журнал append-only: приложение
// никогда не изменяет и не удаляет записи.
type HistoryLog struct {
	ID             string     `json:"id"`
	EntityType     EntityType `json:"entity_type"`
	EntityID       string     `json:"entity_id"`
	ParentClientID string     `json:"parent_client_id"`
	UserName       string     `json:"user_name"`
	Action         ActionType `json:"action"`
	Details        string     `json:"details"`
	Timestamp      time.Time  `json:"timestamp"`
}

func (h *HistoryLog) GetID() string   { return h.ID }
func (h *HistoryLog) SetID(id string) { h.ID = id }
