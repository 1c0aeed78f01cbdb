package scene

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/consulting-chaos/internal/core"
)

// seconds formats a duration in seconds the way every HUD shows it.
func seconds(v float64) string {
	return fmt.Sprintf("%.2fs", v)
}

// drawHeader draws the stage title, the running timer and a hint line.
func drawHeader(dst *core.Screen, title string, elapsed float64, hint string) {
	dst.DrawTextColored(2, 0, title, core.ColorAccent)
	timer := "Time: " + seconds(elapsed)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(timer)-2, 0, timer, core.ColorDefault)
	if hint != "" {
		dst.DrawTextColored(2, 1, hint, core.ColorMuted)
	}
}

// drawRight writes text right-aligned on row y.
func drawRight(dst *core.Screen, y int, text string, c core.Color) {
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(text)-2, y, text, c)
}

// drawBriefing draws the "not started" overlay: a framed box with a heading,
// the briefing lines and the start prompt.
func drawBriefing(dst *core.Screen, heading string, lines []string) {
	w := utf8.RuneCountInString(heading)
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	w = min(w+6, dst.Width())
	h := min(len(lines)+6, dst.Height())
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorAccent)
	dst.DrawTextCentered(box.Y+1, heading, core.ColorAccent)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorDefault)
	}
	dst.DrawTextCentered(box.Bottom()-2, "Press Enter to begin", core.ColorGood)
}

// drawNotices stacks the visible notices above the bottom row.
func drawNotices(dst *core.Screen, items []string) {
	y := dst.Height() - 2 - len(items)
	for _, text := range items {
		dst.DrawTextCentered(y, "» "+text+" «", core.ColorWarn)
		y++
	}
}

// wrapRunes hard-wraps text into lines of at most width runes, keeping
// rune indices aligned across the target and the typed text.
func wrapRunes(text []rune, width int) [][]rune {
	if width <= 0 {
		return nil
	}
	var out [][]rune
	for len(text) > width {
		out = append(out, text[:width])
		text = text[width:]
	}
	return append(out, text)
}
