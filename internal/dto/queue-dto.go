package dto

import "crm-system/internal/entities"

// QueueStatusDTO позволяет задать статус либо с явным флагом
// завершённости, либо оставить его выводимым из имени.
type QueueStatusDTO struct {
	Name      string `json:"name" validate:"required,min=1"`
	IsClosing *bool  `json:"is_closing,omitempty"`
}

func (d QueueStatusDTO) ToEntity() entities.QueueStatus {
	s := entities.QueueStatus{Name: d.Name}
	if d.IsClosing != nil {
		s.IsClosing = *d.IsClosing
	} else {
		s.IsClosing = entities.IsClosingName(d.Name)
	}
	return s
}

func StatusesToEntities(dtos []QueueStatusDTO) []entities.QueueStatus {
	out := make([]entities.QueueStatus, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.ToEntity())
	}
	return out
}

type CreateQueueDTO struct {
	Name   string `json:"name" validate:"required,min=2,max=255"`
	Prefix string `json:"prefix" validate:"required,min=1,max=10,uppercase"`
	// TemplateID заполняет статусы очереди из шаблона; Statuses задаёт
	// их напрямую. Нужно хотя бы одно из двух.
	TemplateID *string          `json:"template_id,omitempty"`
	Statuses   []QueueStatusDTO `json:"statuses,omitempty" validate:"omitempty,min=1,dive"`
}

type UpdateQueueDTO struct {
	Name     *string          `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Prefix   *string          `json:"prefix,omitempty" validate:"omitempty,min=1,max=10,uppercase"`
	Statuses []QueueStatusDTO `json:"statuses,omitempty" validate:"omitempty,min=1,dive"`
}

type CreateQueueTemplateDTO struct {
	Name     string           `json:"name" validate:"required,min=2,max=255"`
	Statuses []QueueStatusDTO `json:"statuses" validate:"required,min=1,dive"`
}

type UpdateQueueTemplateDTO struct {
	Name     *string          `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Statuses []QueueStatusDTO `json:"statuses,omitempty" validate:"omitempty,min=1,dive"`
}
