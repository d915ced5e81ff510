package dto

import "crm-system/internal/entities"

type ChecklistItemDTO struct {
	Text   string `json:"text" validate:"required,min=1"`
	IsDone bool   `json:"is_done"`
}

type AttachmentDTO struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required"`
	Type string `json:"type"`
}

type CreateTaskDTO struct {
	QueueID      string             `json:"queue_id" validate:"required"`
	ClientID     string             `json:"client_id" validate:"required"`
	ContactID    *string            `json:"contact_id,omitempty"`
	DbID         *string            `json:"db_id,omitempty"`
	Type         string             `json:"type" validate:"required,oneof=consultation development request"`
	Priority     string             `json:"priority" validate:"required,oneof=low medium high"`
	Title        string             `json:"title" validate:"required,min=3,max=255"`
	Description  string             `json:"description"`
	PerformerIDs []string           `json:"performer_ids"`
	ObserverIDs  []string           `json:"observer_ids"`
	Tags         []string           `json:"tags"`
	Deadline     *string            `json:"deadline,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Checklist    []ChecklistItemDTO `json:"checklist,omitempty" validate:"omitempty,dive"`
	Attachments  []AttachmentDTO    `json:"attachments,omitempty" validate:"omitempty,dive"`
}

// UpdateTaskDTO покрывает поля, которые можно менять независимо.
// Статус здесь менять нельзя: переходы идут через отдельные операции,
// где действует правило закрывающего статуса.
type UpdateTaskDTO struct {
	ContactID    *string   `json:"contact_id,omitempty"`
	DbID         *string   `json:"db_id,omitempty"`
	Type         *string   `json:"type,omitempty" validate:"omitempty,oneof=consultation development request"`
	Priority     *string   `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Title        *string   `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description  *string   `json:"description,omitempty"`
	PerformerIDs *[]string `json:"performer_ids,omitempty"`
	ObserverIDs  *[]string `json:"observer_ids,omitempty"`
	Tags         *[]string `json:"tags,omitempty"`
	Deadline     *string   `json:"deadline,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ChangeTaskStatusDTO — перевод задачи в другой статус её очереди.
// Для закрывающего статуса оценки обязательны (оценка контакта — когда
// у задачи есть контакт); иначе оценки запрещены.
type ChangeTaskStatusDTO struct {
	Status           string `json:"status" validate:"required"`
	CompletionRating *int   `json:"completion_rating,omitempty" validate:"omitempty,min=1,max=5"`
	ContactRating    *int   `json:"contact_rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// CompleteTaskDTO закрывает задачу: целевой статус выбирается самой
// очередью (первый завершающий, иначе последний в списке).
type CompleteTaskDTO struct {
	CompletionRating int  `json:"completion_rating" validate:"required,min=1,max=5"`
	ContactRating    *int `json:"contact_rating,omitempty" validate:"omitempty,min=1,max=5"`
}

type AddTimeLogDTO struct {
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Minutes int    `json:"minutes" validate:"required,gt=0"`
	Comment string `json:"comment"`
}

type AddChecklistItemDTO struct {
	Text string `json:"text" validate:"required,min=1"`
}

type AddCommentDTO struct {
	Text string `json:"text" validate:"required,min=1"`
}

// TaskResponseDTO дополняет задачу производными полями: кодом в очереди
// ("SUP-12") и суммой трудозатрат в виде "2h 15m".
type TaskResponseDTO struct {
	*entities.Task
	Code      string `json:"code"`
	SpentTime string `json:"spent_time"`
}
