package habit

import (
	"tableflip.dev/bithab/pkg/calendar"
)

// Cursor is per-session UI state: which activity is selected, which month is
// visible, and which sidebar items are expanded. It is not business data, but
// it is persisted remotely (in its own document) so a user's view survives
// reload across devices.
type Cursor struct {
	SelectedActivityID string         `json:"selectedActivityId,omitempty"`
	Visible            calendar.Month `json:"visibleMonth"`
	Expanded           []string       `json:"expandedActivities,omitempty"`
}

// Clone returns a deep copy, safe to hand to the save queue while the live
// cursor keeps mutating.
func (c Cursor) Clone() Cursor {
	c.Expanded = append([]string(nil), c.Expanded...)
	return c
}

// IsExpanded reports whether the activity's sub-list is open.
func (c *Cursor) IsExpanded(id string) bool {
	for _, e := range c.Expanded {
		if e == id {
			return true
		}
	}
	return false
}

// Expand opens the activity's sub-list if it is not open already.
func (c *Cursor) Expand(id string) {
	if id == "" || c.IsExpanded(id) {
		return
	}
	c.Expanded = append(c.Expanded, id)
}

// ToggleExpanded flips the activity's sub-list open or closed.
func (c *Cursor) ToggleExpanded(id string) {
	for i, e := range c.Expanded {
		if e == id {
			c.Expanded = append(c.Expanded[:i], c.Expanded[i+1:]...)
			return
		}
	}
	c.Expanded = append(c.Expanded, id)
}

// SelfHeal repairs dangling references after loads and deletes: a selected id
// that names no existing activity falls back to the first activity (or none),
// and expansion state for removed activities is dropped.
func (c *Cursor) SelfHeal(activities []Activity) {
	known := make(map[string]bool, len(activities))
	for _, a := range activities {
		known[a.ID] = true
	}

	if !known[c.SelectedActivityID] {
		c.SelectedActivityID = ""
		if len(activities) > 0 {
			c.SelectedActivityID = activities[0].ID
		}
	}

	kept := c.Expanded[:0]
	for _, id := range c.Expanded {
		if known[id] {
			kept = append(kept, id)
		}
	}
	c.Expanded = kept
}
