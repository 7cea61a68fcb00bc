package entity

import "time"

// Project is a stored schema with its identity. The schema itself has no
// identity of its own.
type Project struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Schema    SiteSchema `json:"schema"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
