package services

import (
	"context"
	"sort"
	"time"

	"crm-system/internal/dto"
	"crm-system/internal/entities"
	"crm-system/internal/events"
	"crm-system/internal/repositories"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/eventbus"

	"go.uber.org/zap"
)

type MessengerServiceInterface interface {
	GetConversations(ctx context.Context, clientID string) []*entities.Conversation
	GetMessages(ctx context.Context, conversationID string) ([]*entities.Message, error)
	SendMessage(ctx context.Context, payload dto.SendMessageDTO) (*entities.Message, error)
}

// MessengerService — переписка с клиентами по каналам. Переписка
// создаётся лениво при первом сообщении пары клиент + канал.
type MessengerService struct {
	db     *repositories.DB
	bus    *eventbus.Bus
	logger *zap.Logger
}

func NewMessengerService(db *repositories.DB, bus *eventbus.Bus, logger *zap.Logger) *MessengerService {
	return &MessengerService{db: db, bus: bus, logger: logger}
}

func (s *MessengerService) GetConversations(ctx context.Context, clientID string) []*entities.Conversation {
	all := s.db.Conversations.GetAll()
	out := make([]*entities.Conversation, 0, len(all))
	for _, c := range all {
		if clientID != "" && c.ClientID != clientID {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (s *MessengerService) GetMessages(ctx context.Context, conversationID string) ([]*entities.Message, error) {
	if _, ok := s.db.Conversations.GetByID(conversationID); !ok {
		return nil, apperrors.ErrNotFound
	}
	all := s.db.Messages.GetAll()
	out := make([]*entities.Message, 0, len(all))
	for _, m := range all {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *MessengerService) findOrCreateConversation(clientID, channel string) (*entities.Conversation, error) {
	for _, c := range s.db.Conversations.GetAll() {
		if c.ClientID == clientID && c.Channel == channel {
			return c, nil
		}
	}
	return s.db.Conversations.Create(&entities.Conversation{ClientID: clientID, Channel: channel})
}

func (s *MessengerService) SendMessage(ctx context.Context, payload dto.SendMessageDTO) (*entities.Message, error) {
	if _, ok := s.db.Clients.GetByID(payload.ClientID); !ok {
		return nil, apperrors.NewInvalidInputError("клиент %s не существует", payload.ClientID)
	}

	conversation, err := s.findOrCreateConversation(payload.ClientID, payload.Channel)
	if err != nil {
		s.logger.Error("Ошибка при создании переписки", zap.Error(err))
		return nil, err
	}

	direction := entities.DirectionOutgoing
	if payload.Direction != nil {
		direction = entities.MessageDirection(*payload.Direction)
	}

	message, err := s.db.Messages.Create(&entities.Message{
		ConversationID: conversation.ID,
		Direction:      direction,
		Text:           payload.Text,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		s.logger.Error("Ошибка при сохранении сообщения", zap.Error(err))
		return nil, err
	}

	s.bus.Publish(ctx, events.MessageReceived{Message: message})
	return message, nil
}
