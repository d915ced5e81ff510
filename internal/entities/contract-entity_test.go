package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContractIsActive(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse(DateLayout, s)
		if err != nil {
			t.Fatalf("неверная дата в тесте: %v", err)
		}
		return d
	}

	c := &Contract{EndDate: "2026-12-31"}
	assert.True(t, c.IsActive(day("2026-12-31")), "Последний день действия — ещё активен")
	assert.True(t, c.IsActive(day("2026-01-15")))
	assert.False(t, c.IsActive(day("2027-01-01")))

	broken := &Contract{EndDate: "не дата"}
	assert.False(t, broken.IsActive(day("2026-01-01")), "Нечитаемая дата трактуется как неактивный договор")
}
