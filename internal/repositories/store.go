package repositories

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"crm-system/pkg/kvstore"

	"github.com/google/uuid"
)

// Record — требование к хранимой сущности: непрозрачный строковый id,
// назначаемый при создании.
type Record interface {
	GetID() string
	SetID(id string)
}

// Collection — типизированное хранилище одной однородной коллекции.
// Вся коллекция сериализуется в одну JSON-запись key-value хранилища и
// переписывается целиком при каждой мутации, до обновления копии в
// памяти: при ошибке записи состояние в памяти не расходится с диском.
// Мутации сериализуются мьютексом коллекции.
//
// T всегда инстанцируется указателем на сущность (*entities.Client и т.п.).
type Collection[T Record] struct {
	key   string
	kv    kvstore.Store
	mu    sync.RWMutex
	items []T
}

// NewCollection загружает коллекцию по её ключу. Если записи ещё нет,
// коллекция наполняется начальными данными и сразу сохраняется.
func NewCollection[T Record](kv kvstore.Store, key string, seed []T) (*Collection[T], error) {
	c := &Collection[T]{key: key, kv: kv}

	data, ok, err := kv.Get(key)
	if err != nil {
		return nil, fmt.Errorf("коллекция %s: ошибка чтения: %w", key, err)
	}
	if ok {
		if err := json.Unmarshal(data, &c.items); err != nil {
			return nil, fmt.Errorf("коллекция %s: повреждённые данные: %w", key, err)
		}
		return c, nil
	}

	if seed == nil {
		seed = []T{}
	}
	if err := c.persist(seed); err != nil {
		return nil, err
	}
	c.items = seed
	return c, nil
}

// GetAll возвращает снимок коллекции. Сам срез — копия, элементы
// разделяются с хранилищем и не должны изменяться вызывающим.
func (c *Collection[T]) GetAll() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// GetByID возвращает глубокую копию сущности. Отсутствие записи — не
// ошибка: вызывающий обязан проверять ok.
func (c *Collection[T]) GetByID(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var zero T
	for _, item := range c.items {
		if item.GetID() == id {
			cp, err := cloneRecord(item)
			if err != nil {
				return zero, false
			}
			return cp, true
		}
	}
	return zero, false
}

// Create назначает новый id, добавляет сущность и сохраняет коллекцию.
func (c *Collection[T]) Create(item T) (T, error) {
	return c.CreateWith(func([]T) T { return item })
}

// CreateWith создаёт сущность, построенную из текущего состояния
// коллекции. Билдер выполняется под мьютексом записи: порядковые
// номера, вычисленные из existing, не могут быть выданы дважды.
func (c *Collection[T]) CreateWith(build func(existing []T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := build(c.items)
	item.SetID(uuid.NewString())

	next := make([]T, len(c.items), len(c.items)+1)
	copy(next, c.items)
	next = append(next, item)

	var zero T
	if err := c.persist(next); err != nil {
		return zero, err
	}
	c.items = next
	return item, nil
}

// Update применяет mutate к копии сущности и сохраняет коллекцию.
// Несуществующий id — no-op: возвращается ok=false без ошибки.
func (c *Collection[T]) Update(id string, mutate func(item T)) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	idx := -1
	for i, item := range c.items {
		if item.GetID() == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return zero, false, nil
	}

	updated, err := cloneRecord(c.items[idx])
	if err != nil {
		return zero, false, err
	}
	mutate(updated)

	next := make([]T, len(c.items))
	copy(next, c.items)
	next[idx] = updated

	if err := c.persist(next); err != nil {
		return zero, false, err
	}
	c.items = next
	return updated, true, nil
}

// Delete удаляет сущность, если она есть. Повторный вызов для того же
// id возвращает false и ничего не переписывает.
func (c *Collection[T]) Delete(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if item.GetID() != id {
			next = append(next, item)
		}
	}
	if len(next) == len(c.items) {
		return false, nil
	}

	if err := c.persist(next); err != nil {
		return false, err
	}
	c.items = next
	return true, nil
}

func (c *Collection[T]) persist(items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("коллекция %s: ошибка сериализации: %w", c.key, err)
	}
	if err := c.kv.Set(c.key, data); err != nil {
		return fmt.Errorf("коллекция %s: ошибка записи: %w", c.key, err)
	}
	return nil
}

func cloneRecord[T Record](item T) (T, error) {
	var zero T
	data, err := json.Marshal(item)
	if err != nil {
		return zero, err
	}
	out, ok := reflect.New(reflect.TypeOf(item).Elem()).Interface().(T)
	if !ok {
		return zero, fmt.Errorf("неожиданный тип записи %T", item)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return zero, err
	}
	return out, nil
}
