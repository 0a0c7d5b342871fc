package domain

import "time"

type Manufacturer struct {
	ID           ID
	Name         string
	ContactEmail string
	CreatedAt    time.Time
}

func NewManufacturer(name, contactEmail string) *Manufacturer {
	return &Manufacturer{
		Name:         name,
		ContactEmail: contactEmail,
		CreatedAt:    time.Now(),
	}
}
