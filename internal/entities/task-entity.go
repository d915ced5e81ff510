package entities

import "time"

type TaskType string

const (
	TaskTypeConsultation TaskType = "consultation"
	TaskTypeDevelopment  TaskType = "development"
	TaskTypeRequest      TaskType = "request"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type ChecklistItem struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	IsDone bool   `json:"is_done"`
}

type TaskAttachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// TimeLog — одна запись трудозатрат по задаче. Записи только добавляются.
type TimeLog struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Minutes  int    `json:"minutes"`
	Comment  string `json:"comment"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

type Task struct {
	ID          string   `json:"id"`
	QueueID     string   `json:"queue_id"`
	QueueTaskNo int      `json:"queue_task_no"`
	TaskNo      int      `json:"task_no"`
	ClientID    string   `json:"client_id"`
	ContactID   *string  `json:"contact_id,omitempty"`
	DbID        *string  `json:"db_id,omitempty"`
	Type        TaskType `json:"type"`
	Priority    Priority `json:"priority"`
	// Status всегда должен быть элементом списка статусов своей очереди.
	Status           string           `json:"status"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	AuthorID         string           `json:"author_id"`
	PerformerIDs     []string         `json:"performer_ids"`
	ObserverIDs      []string         `json:"observer_ids"`
	Tags             []string         `json:"tags"`
	Deadline         *string          `json:"deadline,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	Checklist        []ChecklistItem  `json:"checklist"`
	Attachments      []TaskAttachment `json:"attachments"`
	TimeLogs         []TimeLog        `json:"time_logs"`
	CompletionRating *int             `json:"completion_rating,omitempty"`
	ContactRating    *int             `json:"contact_rating,omitempty"`
}

func (t *Task) GetID() string   { return t.ID }
func (t *Task) SetID(id string) { t.ID = id }

// TotalMinutes — суммарные трудозатраты по задаче в минутах.
func (t *Task) TotalMinutes() int {
	total := 0
	for _, tl := range t.TimeLogs {
		total += tl.Minutes
	}
	return total
}
