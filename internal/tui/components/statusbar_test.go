package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusBar_MessageTakesPrecedence(t *testing.T) {
	bar := NewStatusBar(60).
		WithLeftText("left").
		WithRightText("right").
		WithMessage("copied #1e3a8a", StatusBarSuccess)

	output := bar.Render()

	assert.Contains(t, output, "copied #1e3a8a")
	assert.NotContains(t, output, "left")
}

func TestStatusBar_ClearMessageRestoresTexts(t *testing.T) {
	bar := NewStatusBar(60).
		WithLeftText("left").
		WithRightText("right").
		WithMessage("oops", StatusBarError)

	bar.ClearMessage()
	output := bar.Render()

	assert.Contains(t, output, "left")
	assert.Contains(t, output, "right")
	assert.NotContains(t, output, "oops")
}

func TestStatusBar_NarrowWidthDoesNotPanic(t *testing.T) {
	bar := NewStatusBar(4).
		WithLeftText("a fairly long left text").
		WithRightText("right side")

	assert.NotPanics(t, func() { bar.Render() })
}

func TestFormatPaletteInfo(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		origin  string
		want    string
	}{
		{
			name:    "catalog palette",
			keyword: "ocean",
			origin:  "catalog",
			want:    `"ocean" · catalog`,
		},
		{
			name:    "generated palette",
			keyword: "xyzzy",
			origin:  "generated",
			want:    `"xyzzy" · generated`,
		},
		{
			name:    "no palette",
			keyword: "",
			origin:  "",
			want:    "No palette yet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPaletteInfo(tt.keyword, tt.origin))
		})
	}
}
