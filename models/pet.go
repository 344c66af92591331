package models

import "time"

// Pet is a member's pet profile used to prefill bookings.
type Pet struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"ownerId" json:"ownerId"`
	Name      string    `bson:"name" json:"name"`
	Type      string    `bson:"type" json:"type"` // "dog" or "cat"
	Breed     string    `bson:"breed,omitempty" json:"breed,omitempty"`
	AgeMonths int       `bson:"ageMonths,omitempty" json:"ageMonths,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SalePet is an animal listed for sale in the shop, managed by admins and
// browsable by anyone.
type SalePet struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Type        string    `bson:"type" json:"type"`
	Breed       string    `bson:"breed,omitempty" json:"breed,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	AgeMonths   int       `bson:"ageMonths,omitempty" json:"ageMonths,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Sold        bool      `bson:"sold" json:"sold"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
