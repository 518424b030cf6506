package domain

import "time"

// Follow records that one user follows another. Edges are not deduplicated;
// repeated follows produce repeated rows.
type Follow struct {
	ID            string    `json:"id"`
	UserFollowed  string    `json:"userFollowed"`
	UserFollowing string    `json:"userFollowing"`
	CreatedAt     time.Time `json:"createdAt"`
}
