package models

import "time"

// Revision is one superseded version of the shared content page.
type Revision struct {
	Content string    `json:"content"`
	Author  string    `json:"author"`
	SavedAt time.Time `json:"savedAt"`
}

// ContentDoc is the shared content page snapshot: the current text plus a
// bounded history of prior versions, newest first.
type ContentDoc struct {
	Current string     `json:"currentContent"`
	History []Revision `json:"history"`
}

// PushHistory prepends rev and evicts the oldest revision beyond cap.
func (d *ContentDoc) PushHistory(rev Revision, cap int) {
	d.History = append([]Revision{rev}, d.History...)
	if cap > 0 && len(d.History) > cap {
		d.History = d.History[:cap]
	}
}
