package domain

import "time"

// Bookmark records that a user bookmarked a tuit.
type Bookmark struct {
	ID           string    `json:"id"`
	TuitID       string    `json:"tuitId"`
	BookmarkedBy string    `json:"bookmarkedBy"`
	CreatedAt    time.Time `json:"createdAt"`
}
