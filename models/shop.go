package models

import "time"

// ShopInfo is the singleton shop-information document shown on the public
// site and edited by admins.
type ShopInfo struct {
	Name         string    `bson:"name" json:"name"`
	Address      string    `bson:"address" json:"address"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email" json:"email"`
	OpeningHours string    `bson:"openingHours" json:"openingHours"`
	About        string    `bson:"about,omitempty" json:"about,omitempty"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
