package models

// Day-care option types.
const (
	DayCareDaily    = "daily"
	DayCareLongTerm = "longTerm"
)

// DayCareOption is a per-day add-on to a grooming appointment. Member
// discounts never apply to day-care pricing.
type DayCareOption struct {
	Type        string  `bson:"type" json:"type"` // "daily" or "longTerm"
	PricePerDay float64 `bson:"pricePerDay" json:"pricePerDay"`
}

// DayCareSelection is the add-on chosen on a specific appointment. For the
// "daily" type Days is always 1; "longTerm" requires at least 2 days.
type DayCareSelection struct {
	Type string `bson:"type" json:"type"`
	Days int    `bson:"days" json:"days"`
}
