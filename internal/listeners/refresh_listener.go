package listeners

import (
	"context"
	"time"

	"go.uber.org/zap"

	"crm-system/internal/events"
	"crm-system/pkg/eventbus"
	"crm-system/pkg/websocket"
)

// RefreshListener пересылает события шины в websocket-хаб: любая
// успешная мутация превращается в конверт refresh, новое сообщение
// переписки — в конверт messenger_message.
type RefreshListener struct {
	hub    *websocket.Hub
	logger *zap.Logger
}

func NewRefreshListener(hub *websocket.Hub, logger *zap.Logger) *RefreshListener {
	return &RefreshListener{hub: hub, logger: logger}
}

func (l *RefreshListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.DataChangedName, l.onDataChanged)
	bus.Subscribe(events.MessageReceivedName, l.onMessageReceived)
}

func (l *RefreshListener) onDataChanged(ctx context.Context, event eventbus.Event) error {
	changed, ok := event.(events.DataChanged)
	if !ok {
		l.logger.Warn("Событие data.changed имеет неожиданный тип")
		return nil
	}
	l.hub.Broadcast(websocket.Envelope{
		Type: websocket.TypeRefresh,
		Payload: websocket.RefreshPayload{
			EntityType: string(changed.EntityType),
			EntityID:   changed.EntityID,
			Action:     string(changed.Action),
		},
		Timestamp: time.Now(),
	})
	return nil
}

func (l *RefreshListener) onMessageReceived(ctx context.Context, event eventbus.Event) error {
	received, ok := event.(events.MessageReceived)
	if !ok {
		l.logger.Warn("Событие messenger.message имеет неожиданный тип")
		return nil
	}
	l.hub.Broadcast(websocket.Envelope{
		Type:      websocket.TypeMessage,
		Payload:   received.Message,
		Timestamp: time.Now(),
	})
	return nil
}
