package models

import "time"

// Record is a unit of user-generated content: a chat message or a blog post.
// Posts carry Title and Published; messages leave them at their zero values
// and are always visible. AuthorName is the owner's username captured at
// write time, a deliberate snapshot rather than a live join.
type Record struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"ownerId"`
	AuthorName string    `json:"authorName"`
	Title      string    `json:"title,omitempty"`
	Content    string    `json:"content"`
	Published  bool      `json:"published,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// RecordsDoc is a full record collection snapshot, newest first.
type RecordsDoc struct {
	Records []Record `json:"records"`
}

// Find returns the index of the record with the given id, or -1.
func (d *RecordsDoc) Find(id string) int {
	for i := range d.Records {
		if d.Records[i].ID == id {
			return i
		}
	}
	return -1
}

// Insert prepends rec and evicts from the tail when the collection would
// exceed cap. Eviction is FIFO: the oldest entry goes first.
func (d *RecordsDoc) Insert(rec Record, cap int) {
	d.Records = append([]Record{rec}, d.Records...)
	if cap > 0 && len(d.Records) > cap {
		d.Records = d.Records[:cap]
	}
}
