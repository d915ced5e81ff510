package repositories

import (
	"sync"
	"testing"

	"crm-system/internal/entities"
	"crm-system/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) kvstore.Store {
	t.Helper()
	kv, err := kvstore.OpenInMemory()
	require.NoError(t, err, "Не удалось открыть хранилище в памяти")
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestCollectionCreateAssignsID(t *testing.T) {
	kv := newTestKV(t)
	col, err := NewCollection(kv, "test_clients", []*entities.Client{})
	require.NoError(t, err)

	created, err := col.Create(&entities.Client{ShortName: "Ромашка"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "Созданной записи должен быть назначен id")

	found, ok := col.GetByID(created.ID)
	require.True(t, ok, "Запись должна находиться по id")
	assert.Equal(t, "Ромашка", found.ShortName)
}

func TestCollectionPersistsAcrossReopen(t *testing.T) {
	kv := newTestKV(t)

	col, err := NewCollection(kv, "test_clients", []*entities.Client{})
	require.NoError(t, err)
	created, err := col.Create(&entities.Client{ShortName: "Ромашка"})
	require.NoError(t, err)

	// Повторное открытие той же коллекции читает то, что было записано.
	reopened, err := NewCollection[*entities.Client](kv, "test_clients", nil)
	require.NoError(t, err)
	found, ok := reopened.GetByID(created.ID)
	require.True(t, ok, "Запись должна пережить переоткрытие коллекции")
	assert.Equal(t, "Ромашка", found.ShortName)
}

func TestCollectionSeedsOnlyOnce(t *testing.T) {
	kv := newTestKV(t)

	seed := []*entities.Client{{ID: "cl1", ShortName: "Первый"}}
	_, err := NewCollection(kv, "test_clients", seed)
	require.NoError(t, err)

	// Второе открытие с другими seed-данными не должно перезатирать
	// существующую запись.
	reopened, err := NewCollection(kv, "test_clients", []*entities.Client{{ID: "cl99", ShortName: "Чужой"}})
	require.NoError(t, err)

	_, ok := reopened.GetByID("cl99")
	assert.False(t, ok, "Seed-данные применяются только к пустому хранилищу")
	_, ok = reopened.GetByID("cl1")
	assert.True(t, ok)
}

func TestCollectionGetByIDReturnsCopy(t *testing.T) {
	kv := newTestKV(t)
	col, err := NewCollection(kv, "test_clients", []*entities.Client{{ID: "cl1", ShortName: "Ромашка"}})
	require.NoError(t, err)

	first, ok := col.GetByID("cl1")
	require.True(t, ok)
	first.ShortName = "Испорчено"

	second, ok := col.GetByID("cl1")
	require.True(t, ok)
	assert.Equal(t, "Ромашка", second.ShortName, "Мутация копии не должна затрагивать хранилище")
}

func TestCollectionUpdateUnknownID(t *testing.T) {
	kv := newTestKV(t)
	col, err := NewCollection(kv, "test_clients", []*entities.Client{})
	require.NoError(t, err)

	_, ok, err := col.Update("нет-такого", func(c *entities.Client) { c.ShortName = "x" })
	require.NoError(t, err, "Отсутствие записи — не ошибка")
	assert.False(t, ok)
}

func TestCollectionDeleteIdempotent(t *testing.T) {
	kv := newTestKV(t)
	col, err := NewCollection(kv, "test_clients", []*entities.Client{{ID: "cl1"}})
	require.NoError(t, err)

	removed, err := col.Delete("cl1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = col.Delete("cl1")
	require.NoError(t, err)
	assert.False(t, removed, "Повторное удаление того же id возвращает false")
}

func TestCreateWithSequentialNumbersUnderConcurrency(t *testing.T) {
	kv := newTestKV(t)
	col, err := NewCollection(kv, "test_tasks", []*entities.Task{})
	require.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := col.CreateWith(func(existing []*entities.Task) *entities.Task {
				maxNo := 0
				for _, task := range existing {
					if task.TaskNo > maxNo {
						maxNo = task.TaskNo
					}
				}
				return &entities.Task{TaskNo: maxNo + 1}
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	seen := make(map[int]bool)
	for _, task := range col.GetAll() {
		assert.False(t, seen[task.TaskNo], "Номер %d выдан дважды", task.TaskNo)
		seen[task.TaskNo] = true
	}
	assert.Len(t, seen, n)
}

func TestNewDBOpensAllCollections(t *testing.T) {
	kv := newTestKV(t)
	db, err := NewDB(kv)
	require.NoError(t, err)

	assert.NotEmpty(t, db.Users.GetAll(), "Пользователи должны наполняться начальными данными")
	assert.NotEmpty(t, db.Queues.GetAll())
	assert.NotEmpty(t, db.Tasks.GetAll())

	task, ok := db.Tasks.GetByID("t1")
	require.True(t, ok)
	assert.Equal(t, 1, task.TaskNo)
	assert.Equal(t, "Новая", task.Status)
}
