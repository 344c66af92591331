package models

// Quote is the transparent price breakdown for a booking. All four components
// are returned so clients can render the breakdown without recomputing it.
type Quote struct {
	BasePrice      float64 `json:"basePrice"`
	DayCarePrice   float64 `json:"dayCarePrice"`
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`
}
