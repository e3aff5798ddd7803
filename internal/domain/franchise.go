package domain

import "time"

type Franchise struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
