package domain

import "time"

type Product struct {
	ID        int64
	Name      string
	Stock     int
	BranchID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
