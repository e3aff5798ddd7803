package domain

import "time"

type Branch struct {
	ID          int64
	Name        string
	FranchiseID int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
