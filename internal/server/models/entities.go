// Package models holds the persistent row types shared by repositories and
// services.
package models

import "time"

type University struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Professor struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Department string      `json:"department"`
	University *University `json:"university,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// Comment is a rating a user left for a professor. At most one comment exists
// per (professor, user) pair; the storage layer enforces it.
type Comment struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	Rating    int        `json:"rating"`
	Professor *Professor `json:"professor,omitempty"`
	Student   *User      `json:"student,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
