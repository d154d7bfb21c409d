package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonoThemeIsPlain(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	fprintOK(&buf, "saved")
	assert.Equal(t, "ok saved\n", buf.String())

	buf.Reset()
	fprintFail(&buf, "boom")
	assert.Equal(t, "error: boom\n", buf.String())

	assert.Contains(t, Box("hello"), "hello")
	assert.Contains(t, Box("hello"), "+")
}

func TestUnknownThemeFallsBackToClassic(t *testing.T) {
	SetTheme("sparkly")
	assert.Equal(t, "✔", Current().SymOK)
	assert.Equal(t, "🛒", Current().SymCart)
}
