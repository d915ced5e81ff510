package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchMode string

type patchEntity struct {
	Name  string
	Phone *string
	Mode  patchMode
	Tags  []string
}

type patchUpdate struct {
	Name  *string
	Phone *string
	Mode  *string
	Tags  *[]string
}

func TestApplyUpdatesSkipsNilFields(t *testing.T) {
	dst := &patchEntity{Name: "Ромашка", Phone: StringPtr("111")}
	changed := ApplyUpdates(dst, &patchUpdate{Name: StringPtr("Лютик")})

	assert.True(t, changed)
	assert.Equal(t, "Лютик", dst.Name)
	require.NotNil(t, dst.Phone)
	assert.Equal(t, "111", *dst.Phone, "nil-поля DTO не трогают сущность")
}

func TestApplyUpdatesConvertsTypedFields(t *testing.T) {
	dst := &patchEntity{Mode: patchMode("file")}
	changed := ApplyUpdates(dst, &patchUpdate{Mode: StringPtr("server")})

	assert.True(t, changed)
	assert.Equal(t, patchMode("server"), dst.Mode, "Строковое поле DTO конвертируется в типизированное поле сущности")
}

func TestApplyUpdatesReplacesSlices(t *testing.T) {
	dst := &patchEntity{Tags: []string{"a", "b"}}
	tags := []string{"c"}
	changed := ApplyUpdates(dst, &patchUpdate{Tags: &tags})

	assert.True(t, changed)
	assert.Equal(t, []string{"c"}, dst.Tags, "Срезы заменяются целиком")
}

func TestApplyUpdatesNoChanges(t *testing.T) {
	dst := &patchEntity{Name: "Ромашка"}
	changed := ApplyUpdates(dst, &patchUpdate{Name: StringPtr("Ромашка")})
	assert.False(t, changed, "Совпадающее значение не считается изменением")
}
