package client

import "time"

type Client struct {
	ID            int64
	Name          string
	ContactPerson *string
	Email         *string
	PhoneNumber   *string
	Address       *string
	City          *string
	Country       *string
	TaxNumber     *string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}
