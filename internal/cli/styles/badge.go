package styles

import (
	"fmt"
	"time"
)

// Row markers.
const (
	IconCursor  = "▸"
	IconCurrent = "●"
	IconOther   = "○"
	IconFloat   = "◫"
	IconHidden  = "⇤"
)

// CurrentBadge marks the current perspective.
func (t *Theme) CurrentBadge() string {
	return t.Badge.Render("current")
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// SizeBadge renders a byte count.
func (t *Theme) SizeBadge(n int) string {
	switch {
	case n < 1024:
		return t.MutedBadge(fmt.Sprintf("%d B", n))
	default:
		return t.MutedBadge(fmt.Sprintf("%.1f KiB", float64(n)/1024))
	}
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	return relativeTime(time.Now(), tm)
}

func relativeTime(now, tm time.Time) string {
	if tm.IsZero() {
		return "never"
	}
	diff := now.Sub(tm)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/(24*7)))
	case diff < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(diff.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(diff.Hours()/(24*365)))
	}
}
