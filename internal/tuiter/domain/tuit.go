package domain

import "time"

// TuitStats tracks engagement counters for a tuit.
type TuitStats struct {
	Replies  int `json:"replies"`
	Retuits  int `json:"retuits"`
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// Tuit is a short user-authored post.
type Tuit struct {
	ID       string    `json:"id"`
	Tuit     string    `json:"tuit"`
	PostedBy string    `json:"postedBy"`
	PostedOn time.Time `json:"postedOn"`
	Stats    TuitStats `json:"stats"`
}
