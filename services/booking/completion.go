package booking

import (
	"petshop/models"
	"petshop/utils"

	"go.uber.org/zap"
)

// finishElapsed flips Booked appointments whose start time has passed to
// Completed and persists the change before returning the records.
//
// Completion is a side effect of being read, not of a timer: there is no
// background scheduler, so the stored status is only as fresh as the last
// read. Keep it that way unless requirements change.
func (s *DefaultBookingService) finishElapsed(appts []models.Appointment) []models.Appointment {
	now := s.now()
	var flipped []string
	for i := range appts {
		if appts[i].Status != models.StatusBooked {
			continue
		}
		start := appts[i].StartTime(now.Location())
		if !start.IsZero() && start.Before(now) {
			appts[i].Status = models.StatusCompleted
			flipped = append(flipped, appts[i].ID)
		}
	}
	if len(flipped) > 0 {
		if err := s.Repo.MarkCompleted(flipped); err != nil {
			utils.GetLogger().Warn("failed to persist lazy completion",
				zap.Int("count", len(flipped)), zap.Error(err))
		}
	}
	return appts
}
