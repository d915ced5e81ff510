package services

import (
	"context"
	"sort"
	"time"

	"crm-system/internal/entities"
	"crm-system/internal/events"
	"crm-system/internal/repositories"
	"crm-system/pkg/contextkeys"
	"crm-system/pkg/eventbus"
	"crm-system/pkg/utils"

	"go.uber.org/zap"
)

// SystemUserName подставляется в журнал, когда мутация выполняется вне
// пользовательской сессии.
const SystemUserName = "Система"

var entityLabels = map[entities.EntityType]string{
	entities.EntityClient:        "клиент",
	entities.EntityContact:       "контакт",
	entities.EntityContract:      "договор",
	entities.EntityDatabase:      "база 1С",
	entities.EntityTask:          "задача",
	entities.EntityQueue:         "очередь",
	entities.EntityQueueTemplate: "шаблон очереди",
}

func entityLabel(t entities.EntityType) string {
	if label, ok := entityLabels[t]; ok {
		return label
	}
	return string(t)
}

type HistoryServiceInterface interface {
	GetHistory(ctx context.Context) []*entities.HistoryLog
	GetHistoryByClient(ctx context.Context, clientID string) []*entities.HistoryLog
	Append(ctx context.Context, entityType entities.EntityType, entityID, parentClientID string, action entities.ActionType, details string)
}

// HistoryService — журнал изменений: превращает каждую успешную мутацию
// в append-only запись HistoryLog и сигналит представлениям о
// необходимости перечитать данные.
type HistoryService struct {
	db     *repositories.DB
	bus    *eventbus.Bus
	logger *zap.Logger
}

func NewHistoryService(db *repositories.DB, bus *eventbus.Bus, logger *zap.Logger) *HistoryService {
	return &HistoryService{db: db, bus: bus, logger: logger}
}

// GetHistory возвращает весь журнал, новые записи первыми.
func (s *HistoryService) GetHistory(ctx context.Context) []*entities.HistoryLog {
	logs := s.db.History.GetAll()
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return logs
}

// GetHistoryByClient возвращает записи, относящиеся к одному клиенту.
func (s *HistoryService) GetHistoryByClient(ctx context.Context, clientID string) []*entities.HistoryLog {
	all := s.GetHistory(ctx)
	out := make([]*entities.HistoryLog, 0, len(all))
	for _, log := range all {
		if log.ParentClientID == clientID {
			out = append(out, log)
		}
	}
	return out
}

// ActorName определяет имя действующего пользователя из контекста
// запроса. Атрибуция журнала не зависит от глобального состояния
// сессии: кто в контексте, тот и автор.
func (s *HistoryService) ActorName(ctx context.Context) string {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(string)
	if !ok || userID == "" {
		return SystemUserName
	}
	user, ok := s.db.Users.GetByID(userID)
	if !ok {
		return SystemUserName
	}
	return user.Name
}

// Append пишет запись журнала и публикует событие обновления данных.
// Журнал не трогается, если вызывающая мутация не удалась — за это
// отвечает logAndExecute.
func (s *HistoryService) Append(ctx context.Context, entityType entities.EntityType, entityID, parentClientID string, action entities.ActionType, details string) {
	record := &entities.HistoryLog{
		EntityType:     entityType,
		EntityID:       entityID,
		ParentClientID: parentClientID,
		UserName:       s.ActorName(ctx),
		Action:         action,
		Details:        details,
		Timestamp:      time.Now(),
	}
	if _, err := s.db.History.Create(record); err != nil {
		// Сама мутация уже сохранена; потеря записи журнала — не повод
		// откатывать её.
		s.logger.Error("Не удалось записать журнал изменений",
			zap.String("entity_type", string(entityType)),
			zap.String("entity_id", entityID),
			zap.Error(err),
		)
		return
	}

	s.bus.Publish(ctx, events.DataChanged{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
	})
}

// logAndExecute — обёртка вокруг мутации хранилища: сначала выполняется
// операция, и только при её успехе появляется запись журнала и сигнал
// обновления. Для create и delete описание фиксированное, для update —
// диф по полям.
func logAndExecute[T repositories.Record](
	ctx context.Context,
	hist *HistoryService,
	entityType entities.EntityType,
	parentClientID func(item T) string,
	action entities.ActionType,
	oldItem T,
	op func() (T, bool, error),
) (T, bool, error) {
	result, ok, err := op()
	if err != nil || !ok {
		return result, ok, err
	}

	var entityID, parentID, details string
	switch action {
	case entities.ActionCreate:
		entityID = result.GetID()
		parentID = parentClientID(result)
		details = "Создан новый " + entityLabel(entityType)
	case entities.ActionDelete:
		entityID = oldItem.GetID()
		parentID = parentClientID(oldItem)
		details = "Удалён " + entityLabel(entityType)
	default:
		entityID = oldItem.GetID()
		parentID = parentClientID(oldItem)
		details = utils.DescribeChanges(oldItem, result)
	}

	hist.Append(ctx, entityType, entityID, parentID, action, details)
	return result, true, nil
}

// constParent — для сущностей, у которых id клиента известен заранее.
func constParent[T repositories.Record](clientID string) func(T) string {
	return func(T) string { return clientID }
}
