package domain

import "time"

type Customer struct {
	ID        ID
	Name      string
	Email     string
	Document  *string
	CreatedAt time.Time
}

func NewCustomer(name, email string, document *string) *Customer {
	return &Customer{
		Name:      name,
		Email:     email,
		Document:  document,
		CreatedAt: time.Now(),
	}
}
