// Package habit holds the in-memory habit model: activities with colored
// sub-activities, freeform goals, and the per-day log index.
package habit

import (
	"strings"

	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultColor matches the color-picker default of the original client.
const DefaultColor = "#3B82F6"

// SubActivity is a colored, named child of an Activity. It is the unit
// actually logged on most calendars.
type SubActivity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Activity is a top-level habit category. Activities without sub-activities
// are logged under their own id.
type Activity struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	SubActivities []SubActivity `json:"subActivities"`
}

// Sub returns the child with the given id.
func (a *Activity) Sub(id string) (*SubActivity, bool) {
	for i := range a.SubActivities {
		if a.SubActivities[i].ID == id {
			return &a.SubActivities[i], true
		}
	}
	return nil, false
}

// Goal is an independent checklist item, unrelated to the calendar.
type Goal struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// NewID returns an opaque unique id.
func NewID() string {
	return uuid.NewString()
}

// NormalizeColor validates an RGB hex color ("#RGB" or "#RRGGBB") and returns
// it unchanged, or DefaultColor for anything unparseable.
func NormalizeColor(raw string) string {
	raw = strings.TrimSpace(raw)
	if _, err := colorful.Hex(raw); err != nil {
		return DefaultColor
	}
	return raw
}
