package events

import "crm-system/internal/entities"

const (
	DataChangedName     = "data.changed"
	MessageReceivedName = "messenger.message"
)

// DataChanged публикуется после каждой успешной мутации, прошедшей
// через журнал изменений. Представления в ответ перечитывают коллекции
// целиком — точечной инвалидации нет.
type DataChanged struct {
	EntityType entities.EntityType
	EntityID   string
	Action     entities.ActionType
}

func (e DataChanged) Name() string { return DataChangedName }

// MessageReceived публикуется при появлении нового сообщения переписки.
type MessageReceived struct {
	Message *entities.Message
}

func (e MessageReceived) Name() string { return MessageReceivedName }
