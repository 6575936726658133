package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestThemeNames_SortedAndResolvable(t *testing.T) {
	names := ThemeNames()

	assert.Equal(t, []string{"gruvbox", "mono", "tokyo-night"}, names)
	for _, n := range names {
		_, ok := GetPalette(n)
		assert.True(t, ok, n)
	}

	_, ok := GetPalette("solarized")
	assert.False(t, ok)
}

func TestNew_PlainForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := New(lipgloss.NewRenderer(&buf))

	assert.Equal(t, "done", s.Success.Render("done"))
	assert.Equal(t, "title", s.Header.Render("title"))
}
