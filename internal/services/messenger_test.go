package services

import (
	"testing"

	"crm-system/internal/dto"
	"crm-system/internal/entities"
	"crm-system/pkg/eventbus"
	"crm-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessengerService(t *testing.T, env *testEnv) *MessengerService {
	t.Helper()
	return NewMessengerService(env.db, eventbus.New(zapNop()), zapNop())
}

func TestSendMessageCreatesConversationLazily(t *testing.T) {
	env := newTestEnv(t)
	messenger := newMessengerService(t, env)

	first, err := messenger.SendMessage(adminCtx(), dto.SendMessageDTO{
		ClientID: "cl1", Channel: "whatsapp", Text: "Здравствуйте",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.DirectionOutgoing, first.Direction)

	second, err := messenger.SendMessage(adminCtx(), dto.SendMessageDTO{
		ClientID: "cl1", Channel: "whatsapp", Text: "Ещё вопрос",
		Direction: utils.StringPtr("incoming"),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ConversationID, second.ConversationID,
		"Пара клиент+канал использует одну переписку")
	assert.Equal(t, entities.DirectionIncoming, second.Direction)

	_, err = messenger.SendMessage(adminCtx(), dto.SendMessageDTO{
		ClientID: "cl1", Channel: "telegram", Text: "Другой канал",
	})
	require.NoError(t, err)
	assert.Len(t, messenger.GetConversations(adminCtx(), "cl1"), 2)

	messages, err := messenger.GetMessages(adminCtx(), first.ConversationID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Здравствуйте", messages[0].Text, "Сообщения отдаются от старых к новым")
}

func TestSendMessageUnknownClient(t *testing.T) {
	env := newTestEnv(t)
	messenger := newMessengerService(t, env)

	_, err := messenger.SendMessage(adminCtx(), dto.SendMessageDTO{
		ClientID: "нет-такого", Channel: "whatsapp", Text: "x",
	})
	assert.Error(t, err)
}
