package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReportResolvesNames(t *testing.T) {
	env := newTestEnv(t)
	reports := NewReportService(env.db, zapNop())

	items, total := reports.GetReport(adminCtx(), ReportFilter{})
	require.Equal(t, 1, total)

	row := items[0]
	assert.Equal(t, "SUP-1", row.Code)
	assert.Equal(t, "TechStore", row.ClientName, "В отчёте клиент показывается коротким именем")
	assert.Equal(t, "Поддержка", row.QueueName)
}

func TestGetReportFilters(t *testing.T) {
	env := newTestEnv(t)
	reports := NewReportService(env.db, zapNop())

	items, total := reports.GetReport(adminCtx(), ReportFilter{ClientID: "cl1"})
	require.Equal(t, 1, total)
	assert.Equal(t, "TechStore", items[0].ClientName)

	_, total = reports.GetReport(adminCtx(), ReportFilter{QueueID: "q404"})
	assert.Zero(t, total, "Чужая очередь не даёт строк")
}
