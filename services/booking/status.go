package booking

import "petshop/models"

// CanTransition reports whether a status change is legal. Booked is the only
// non-terminal state; Completed and Cancelled accept no further transitions.
// Admins may force any transition as a back-office override.
func CanTransition(from, to string, admin bool) bool {
	if from == to {
		return true
	}
	if admin {
		return true
	}
	if from != models.StatusBooked {
		return false
	}
	return to == models.StatusCompleted || to == models.StatusCancelled
}

func validStatus(s string) bool {
	switch s {
	case models.StatusBooked, models.StatusCompleted, models.StatusCancelled:
		return true
	}
	return false
}
