// Package format holds the presentation helpers shared by the HTML
// templates: Brazilian currency and date formatting plus the status marker
// used in order lists.
package format

import (
	"fmt"
	"strings"
	"time"

	"costuras/app/models"
)

// Currency renders a value as Brazilian reais: "R$ 1234,56".
func Currency(v float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

// Date converts an ISO date (2006-01-02) to dd/mm/yyyy. Anything that does
// not parse is returned unchanged, matching the forgiving behavior of the
// views: delivery dates are free-form user input.
func Date(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

// StatusEmoji maps the recognized statuses to their dashboard markers.
// Unrecognized free-text statuses get a neutral marker.
func StatusEmoji(status string) string {
	switch status {
	case models.StatusPending:
		return "⏳"
	case models.StatusInProgress:
		return "🔄"
	case models.StatusCompleted:
		return "✅"
	case models.StatusDelivered:
		return "🎉"
	default:
		return "📝"
	}
}
