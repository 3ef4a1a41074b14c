package model

import "time"

// Author is the persisted row. Password is stored as given; create and
// update echo the full row back, mirroring the public API contract.
type Author struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	AuthorName string    `json:"authorName"`
	Password   string    `json:"password"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AuthorSummary is the collection projection. It never carries the password.
type AuthorSummary struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	AuthorName string    `json:"authorName"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
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

// AuthorDetail is the single-author projection: entries the author recorded,
// statements attributed to them, and their list memberships. The slices are
// always materialized so the JSON carries empty arrays, never null.
type AuthorDetail struct {
	Name       string          `json:"name"`
	AuthorName string          `json:"authorName"`
	Email      string          `json:"email"`
	CreatedAt  time.Time       `json:"createdAt"`
	Entries    []EntryRef      `json:"entries"`
	Statements []EntryRef      `json:"statements"`
	Lists      []MembershipRef `json:"lists"`
}
