package model

import "time"

// CategoryID uniquely identifies a competition category
type CategoryID string

// Category groups competitions by discipline
type Category struct {
	ID          CategoryID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Color       string     `json:"color"`
	CreatedAt   time.Time  `json:"created_at"`
}
