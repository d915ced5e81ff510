package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsClosingName(t *testing.T) {
	cases := []struct {
		name    string
		closing bool
	}{
		{"Закрыта", true},
		{"ЗАКРЫТ", true},
		{"Выполнено", true},
		{"Завершена", true},
		{"Done", true},
		{"Готово к закрытию", true},
		{"Новая", false},
		{"В работе", false},
		{"Ожидает клиента", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.closing, IsClosingName(tc.name), "статус %q", tc.name)
	}
}

func TestStatusesFromNames(t *testing.T) {
	statuses := StatusesFromNames([]string{"Новая", "В работе", "Закрыта"})
	require.Len(t, statuses, 3)
	assert.False(t, statuses[0].IsClosing)
	assert.False(t, statuses[1].IsClosing)
	assert.True(t, statuses[2].IsClosing)
}

func TestQueueClosingStatusFallback(t *testing.T) {
	q := &Queue{Statuses: StatusesFromNames([]string{"Новая", "В работе"})}
	closing, ok := q.ClosingStatus()
	require.True(t, ok)
	assert.Equal(t, "В работе", closing.Name, "Без завершающего статуса закрытие ведёт в последний")

	empty := &Queue{}
	_, ok = empty.ClosingStatus()
	assert.False(t, ok)
}

func TestQueueTaskCode(t *testing.T) {
	q := &Queue{Prefix: "SUP"}
	assert.Equal(t, "SUP-12", q.TaskCode(12))
}
