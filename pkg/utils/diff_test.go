package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type diffFixture struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Phone *string  `json:"phone,omitempty"`
	Tags  []string `json:"tags"`
}

func TestDescribeChangesReportsChangedFields(t *testing.T) {
	oldItem := &diffFixture{ID: "1", Name: "Ромашка", Phone: StringPtr("+79990001122"), Tags: []string{"vip"}}
	newItem := &diffFixture{ID: "1", Name: "Лютик", Phone: StringPtr("+79990001122"), Tags: []string{"vip", "новый"}}

	got := DescribeChanges(oldItem, newItem)
	assert.Contains(t, got, "Изменено:")
	assert.Contains(t, got, "name: Ромашка -> Лютик")
	assert.Contains(t, got, "tags: [vip] -> [vip, новый]")
	assert.NotContains(t, got, "phone", "Неизменённые поля не попадают в описание")
	assert.NotContains(t, got, "id:", "Поле id пропускается")
}

func TestDescribeChangesNilPointer(t *testing.T) {
	oldItem := &diffFixture{Name: "Ромашка"}
	newItem := &diffFixture{Name: "Ромашка", Phone: StringPtr("+79990001122")}

	got := DescribeChanges(oldItem, newItem)
	assert.Contains(t, got, "phone: <пусто> -> +79990001122")
}

func TestDescribeChangesNoChanges(t *testing.T) {
	item := &diffFixture{Name: "Ромашка", Tags: []string{"vip"}}
	assert.Equal(t, "Изменения не обнаружены", DescribeChanges(item, item))
}

func TestDescribeChangesTruncatesLongValues(t *testing.T) {
	oldItem := &diffFixture{Name: "x"}
	newItem := &diffFixture{Name: strings.Repeat("д", 100)}

	got := DescribeChanges(oldItem, newItem)
	assert.Contains(t, got, "…", "Длинные значения усекаются")
	assert.NotContains(t, got, strings.Repeat("д", 50))
}
