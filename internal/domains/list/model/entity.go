package model

import "time"

// List is the persisted row. Tag is nullable.
type List struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Tag       *string   `json:"tag"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListSummary is the collection projection, same fields as the row.
type ListSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Tag       *string   `json:"tag"`
	CreatedAt time.Time `json:"createdAt"`
}

// EntryRef is the trimmed entry shape embedded in the detail projection.
type EntryRef struct {
	ID        int64  `json:"id"`
	Statement string `json:"statement"`
	Color     string `json:"color"`
}

// MembershipRef is an (author, list) pair from the membership table.
type MembershipRef struct {
	AuthorID int64 `json:"authorId"`
	ListID   int64 `json:"listId"`
}

// ListDetail is the single-list projection: the author memberships and the
// entries in this list. Slices are always materialized so the JSON carries
// empty arrays, never null.
type ListDetail struct {
	Name      string          `json:"name"`
	Tag       *string         `json:"tag"`
	CreatedAt time.Time       `json:"createdAt"`
	Authors   []MembershipRef `json:"authors"`
	Entries   []EntryRef      `json:"entries"`
}
