package services

import (
	"testing"

	"crm-system/internal/dto"
	"crm-system/internal/entities"
	apperrors "crm-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryAddAndDelete(t *testing.T) {
	env := newTestEnv(t)
	dirs := NewDirectoryService(env.db, zapNop())

	created, err := dirs.AddItem(adminCtx(), dto.DirectorySpheres, dto.DirectoryItemDTO{Name: "Логистика"})
	require.NoError(t, err)
	sphere, ok := created.(*entities.ActivitySphere)
	require.True(t, ok)
	assert.Equal(t, "Логистика", sphere.Name)

	require.NoError(t, dirs.DeleteItem(adminCtx(), dto.DirectorySpheres, sphere.ID))
	assert.ErrorIs(t, dirs.DeleteItem(adminCtx(), dto.DirectorySpheres, sphere.ID), apperrors.ErrNotFound)
}

func TestDirectoryUnknownType(t *testing.T) {
	env := newTestEnv(t)
	dirs := NewDirectoryService(env.db, zapNop())

	_, err := dirs.AddItem(adminCtx(), "planets", dto.DirectoryItemDTO{Name: "Марс"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownDirectory)
	assert.ErrorIs(t, dirs.DeleteItem(adminCtx(), "planets", "x"), apperrors.ErrUnknownDirectory)
}

func TestDirectoryQueueTemplateDerivesClosingFlag(t *testing.T) {
	env := newTestEnv(t)
	dirs := NewDirectoryService(env.db, zapNop())

	created, err := dirs.AddItem(adminCtx(), dto.DirectoryQueueTemplates, dto.DirectoryItemDTO{
		Name:     "Внедрение",
		Statuses: []dto.QueueStatusDTO{{Name: "Новая"}, {Name: "Выполнено"}},
	})
	require.NoError(t, err)
	template, ok := created.(*entities.QueueTemplate)
	require.True(t, ok)
	require.Len(t, template.Statuses, 2)
	assert.False(t, template.Statuses[0].IsClosing)
	assert.True(t, template.Statuses[1].IsClosing, "Флаг завершённости выводится из имени при создании")
}
