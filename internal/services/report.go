package services

import (
	"context"
	"sort"
	"time"

	"crm-system/internal/entities"
	"crm-system/internal/repositories"
	"crm-system/pkg/utils"

	"go.uber.org/zap"
)

// ReportFilter — параметры выборки отчёта по задачам.
type ReportFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	QueueID  string
	ClientID string
}

// ReportItem — одна строка отчёта с уже разыменованными названиями.
type ReportItem struct {
	Code             string  `json:"code"`
	Title            string  `json:"title"`
	ClientName       string  `json:"client_name"`
	QueueName        string  `json:"queue_name"`
	Status           string  `json:"status"`
	Type             string  `json:"type"`
	Priority         string  `json:"priority"`
	CreatedAt        string  `json:"created_at"`
	SpentTime        string  `json:"spent_time"`
	CompletionRating *int    `json:"completion_rating,omitempty"`
	Deadline         *string `json:"deadline,omitempty"`
}

type ReportServiceInterface interface {
	GetReport(ctx context.Context, filter ReportFilter) ([]ReportItem, int)
}

// ReportService собирает плоский отчёт по задачам для выгрузки.
type ReportService struct {
	db     *repositories.DB
	logger *zap.Logger
}

func NewReportService(db *repositories.DB, logger *zap.Logger) *ReportService {
	return &ReportService{db: db, logger: logger}
}

func (s *ReportService) GetReport(ctx context.Context, filter ReportFilter) ([]ReportItem, int) {
	clientNames := make(map[string]string)
	for _, c := range s.db.Clients.GetAll() {
		clientNames[c.ID] = c.ShortName
	}
	queues := make(map[string]*entities.Queue)
	for _, q := range s.db.Queues.GetAll() {
		queues[q.ID] = q
	}

	tasks := s.db.Tasks.GetAll()
	items := make([]ReportItem, 0, len(tasks))
	for _, t := range tasks {
		if filter.QueueID != "" && t.QueueID != filter.QueueID {
			continue
		}
		if filter.ClientID != "" && t.ClientID != filter.ClientID {
			continue
		}
		if filter.DateFrom != nil && t.CreatedAt.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && t.CreatedAt.After(*filter.DateTo) {
			continue
		}

		item := ReportItem{
			Title:            t.Title,
			ClientName:       clientNames[t.ClientID],
			Status:           t.Status,
			Type:             string(t.Type),
			Priority:         string(t.Priority),
			CreatedAt:        t.CreatedAt.Format("02.01.2006"),
			SpentTime:        utils.FormatMinutes(t.TotalMinutes()),
			CompletionRating: t.CompletionRating,
			Deadline:         t.Deadline,
		}
		if q, ok := queues[t.QueueID]; ok {
			item.Code = q.TaskCode(t.QueueTaskNo)
			item.QueueName = q.Name
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	return items, len(items)
}
