package entities

import (
	"fmt"
	"strings"
)

// closingKeywords — словарь признаков "закрывающего" статуса. Используется
// один раз, при создании очереди или шаблона из простого списка имён;
// дальше переходы смотрят только на явный флаг IsClosing.
var closingKeywords = []string{"закрыт", "выполнено", "завершен", "done"}

// IsClosingName определяет по имени, похож ли статус на завершающий.
// Сравнение регистронезависимое, по подстроке.
func IsClosingName(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range closingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// QueueStatus — один шаг рабочего процесса. Флаг is_closing хранится
// явно: завершающий статус открывает этап сбора оценок.
type QueueStatus struct {
	Name      string `json:"name"`
	IsClosing bool   `json:"is_closing"`
}

// StatusesFromNames строит список статусов из простых имён, выводя флаг
// завершённости по словарю ключевых слов.
func StatusesFromNames(names []string) []QueueStatus {
	statuses := make([]QueueStatus, 0, len(names))
	for _, name := range names {
		statuses = append(statuses, QueueStatus{Name: name, IsClosing: IsClosingName(name)})
	}
	return statuses
}

// Queue — именованный рабочий процесс задач: упорядоченный список
// статусов и префикс для человекочитаемых кодов задач ("SUP-12").
type Queue struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Prefix     string        `json:"prefix"`
	TemplateID string        `json:"template"`
	Statuses   []QueueStatus `json:"statuses"`
}

func (q *Queue) GetID() string   { return q.ID }
func (q *Queue) SetID(id string) { q.ID = id }

// FindStatus возвращает статус очереди по имени.
func (q *Queue) FindStatus(name string) (QueueStatus, bool) {
	for _, s := range q.Statuses {
		if s.Name == name {
			return s, true
		}
	}
	return QueueStatus{}, false
}

// FirstStatus — статус по умолчанию для новой задачи.
func (q *Queue) FirstStatus() string {
	if len(q.Statuses) == 0 {
		return ""
	}
	return q.Statuses[0].Name
}

// ClosingStatus возвращает первый завершающий статус очереди. Если в
// очереди нет ни одного завершающего, закрытие приводит задачу в
// последний статус списка.
func (q *Queue) ClosingStatus() (QueueStatus, bool) {
	for _, s := range q.Statuses {
		if s.IsClosing {
			return s, true
		}
	}
	if len(q.Statuses) == 0 {
		return QueueStatus{}, false
	}
	return q.Statuses[len(q.Statuses)-1], true
}

// TaskCode строит человекочитаемый код задачи в этой очереди.
func (q *Queue) TaskCode(queueTaskNo int) string {
	return fmt.Sprintf("%s-%d", q.Prefix, queueTaskNo)
}

// QueueTemplate — переиспользуемый именованный список статусов,
// которым наполняются новые очереди. После создания очередь может
// разойтись со своим шаблоном.
type QueueTemplate struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Statuses []QueueStatus `json:"statuses"`
}

func (t *QueueTemplate) GetID() string   { return t.ID }
func (t *QueueTemplate) SetID(id string) { t.ID = id }
