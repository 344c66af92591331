package models

// ServiceDefinition describes a bookable grooming/daycare service. The ID is
// the sole foreign key used by appointments; Name is purely cosmetic.
type ServiceDefinition struct {
	ID                    string  `bson:"id" json:"id"`                                       // stable identifier, e.g. "basic", "full", "spa"
	Name                  string  `bson:"name" json:"name"`                                   // display name
	BasePrice             float64 `bson:"basePrice" json:"basePrice"`                         // currency-agnostic, rounded at output
	DurationHours         int     `bson:"durationHours" json:"durationHours"`                 // consecutive 1-hour slots the service occupies
	MemberDiscountPercent float64 `bson:"memberDiscountPercent" json:"memberDiscountPercent"` // 0-100, applied to BasePrice only
	CapacityLimit         int     `bson:"capacityLimit,omitempty" json:"capacityLimit"`       // 0 means "use the global default"
}
