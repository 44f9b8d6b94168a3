package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "pizza-meia-calabresa", Slugify("Pizza Meia Calabresa!"))
	assert.Equal(t, "pao-de-queijo", Slugify("  Pão de Queijo "))
}

func TestBuildImageFileName(t *testing.T) {
	now := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)

	name, err := BuildImageFileName("Foto Calabresa.PNG", now)
	require.NoError(t, err)
	assert.Equal(t, "foto-calabresa-20260105103000.jpg", name)

	name, err = BuildImageFileName("!!!.jpg", now)
	require.NoError(t, err)
	assert.Equal(t, "imagem-20260105103000.jpg", name)

	_, err = BuildImageFileName("menu.pdf", now)
	assert.Error(t, err)
}
