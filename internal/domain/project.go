package domain

import "time"

// Project is a portfolio entry rendered as a card.
type Project struct {
	ID          string // uuid
	Link        string
	Title       string
	Description string
	Image       string
	Position    int
	CreatedAt   time.Time
}
