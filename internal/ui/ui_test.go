package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/checklists/internal/model"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░   0%", ProgressBar(0, 0, 10))
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(2, 4, 10))
	assert.Equal(t, "██████████ 100%", ProgressBar(3, 3, 10))
	assert.Equal(t, 5+5, Width(ProgressBar(1, 3, 1)), "width is clamped to 5")
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { _ = SetTheme("classic") })

	require.NoError(t, SetTheme("neon"))
	assert.Equal(t, "neon", Current().Name)

	require.NoError(t, SetTheme("MONO"))
	assert.Equal(t, "[x]", Current().BoxChecked)
	assert.Equal(t, "$", IconGlyph(model.IconShopping))

	err := SetTheme("sepia")
	assert.ErrorContains(t, err, "unknown theme")
	assert.Equal(t, "classic", Current().Name)
}

func TestEveryIconHasGlyph(t *testing.T) {
	t.Cleanup(func() { _ = SetTheme("classic") })
	for _, name := range Themes {
		require.NoError(t, SetTheme(name))
		for _, ic := range model.Icons() {
			assert.NotEqual(t, "?", IconGlyph(ic), "%s/%s", name, ic)
		}
	}
}

func TestTruncateAndPad(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hel…", Truncate("hello", 4))
	assert.Equal(t, "", Truncate("hello", 0))
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
}

func TestPanelAndMessages(t *testing.T) {
	out := Panel([]string{"one", "three"})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "one")
	assert.Equal(t, Width(lines[0]), Width(lines[2]))

	var buf bytes.Buffer
	OK(&buf, "saved")
	Fail(&buf, "broken")
	assert.Equal(t, "✔ saved\n✖ broken\n", buf.String())
}

func TestItemLine(t *testing.T) {
	assert.Equal(t, "☐ Buy milk", ItemLine("Buy milk", false, 0))
	assert.Equal(t, "☑ Buy milk", ItemLine("Buy milk", true, 0))
	assert.Equal(t, "☐ Buy…", ItemLine("Buy milk", false, 6))
}
