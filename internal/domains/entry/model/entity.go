package model

import "time"

// Entry is the persisted row: a statement in a list, recorded by one author
// (EnteredByID) and attributed to another (StatedByID). The two may be the
// same author.
type Entry struct {
	ID          int64     `json:"id"`
	Statement   string    `json:"statement"`
	Color       string    `json:"color"`
	ListID      int64     `json:"listId"`
	EnteredByID int64     `json:"enteredById"`
	StatedByID  int64     `json:"statedById"`
	CreatedAt   time.Time `json:"createdAt"`
}
