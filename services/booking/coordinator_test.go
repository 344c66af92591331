package booking

import (
	"sync"
	"testing"

	"petshop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guestRequest(date, timeLabel, serviceID string) models.AppointmentRequest {
	return models.AppointmentRequest{
		PetName:   "Rex",
		PetType:   models.PetTypeDog,
		Date:      date,
		Time:      timeLabel,
		ServiceID: serviceID,
		Owner:     models.OwnerContact{Name: "Guest", Email: "guest@example.com"},
	}
}

func TestCreateAppointmentGuest(t *testing.T) {
	svc := newTestBookingService(t, 2)

	appt, err := svc.CreateAppointment(guestRequest(tomorrow, "10:00", "full"), models.Identity{})
	require.NoError(t, err)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, models.StatusBooked, appt.Status)
	assert.Equal(t, 10, appt.Hour)
	assert.Equal(t, "10:00", appt.Time)
	assert.Equal(t, 2, appt.DurationHours)
	// No account matches the contact email, so the full base price applies.
	assert.Equal(t, 120.0, appt.TotalPrice)
	assert.Empty(t, appt.UserID)

	// Guest bookings produce no feed entries or reminders.
	assert.Empty(t, svc.Notifier.(*fakeNotifier).calls)
	assert.Empty(t, svc.Reminders.(*fakeReminders).appts)
}

func TestCreateAppointmentMember(t *testing.T) {
	svc := newTestBookingService(t, 2)
	require.NoError(t, svc.Users.Create(&models.User{ID: "u1", Name: "Mia", Email: "mia@example.com"}))

	req := guestRequest(tomorrow, "10:00", "full")
	req.Owner = models.OwnerContact{}
	ident := models.Identity{Authenticated: true, UserID: "u1", Email: "mia@example.com"}

	appt, err := svc.CreateAppointment(req, ident)
	require.NoError(t, err)

	// 10% member discount on the base price.
	assert.Equal(t, 108.0, appt.TotalPrice)
	assert.Equal(t, "u1", appt.UserID)
	// The contact was filled from the account.
	assert.Equal(t, "Mia", appt.Owner.Name)

	assert.Equal(t, []string{models.NotificationBookingConfirmed}, svc.Notifier.(*fakeNotifier).calls)
	assert.Equal(t, []string{appt.ID}, svc.Reminders.(*fakeReminders).appts)
}

func TestCreateAppointmentMemberDiscountByEmail(t *testing.T) {
	// An existing account matching the contact email earns the discount even
	// without a session.
	svc := newTestBookingService(t, 2)
	require.NoError(t, svc.Users.Create(&models.User{ID: "u1", Email: "guest@example.com"}))

	appt, err := svc.CreateAppointment(guestRequest(tomorrow, "09:00", "basic"), models.Identity{})
	require.NoError(t, err)
	assert.Equal(t, 55.2, appt.TotalPrice)
}

func TestCreateAppointmentValidation(t *testing.T) {
	svc := newTestBookingService(t, 2)

	tests := []struct {
		name   string
		mutate func(*models.AppointmentRequest)
		field  string
	}{
		{"missing pet name", func(r *models.AppointmentRequest) { r.PetName = "" }, "petName"},
		{"unsupported pet type", func(r *models.AppointmentRequest) { r.PetType = "parrot" }, "petType"},
		{"bad date", func(r *models.AppointmentRequest) { r.Date = "next tuesday" }, "date"},
		{"bad time", func(r *models.AppointmentRequest) { r.Time = "10am" }, "time"},
		{"missing service", func(r *models.AppointmentRequest) { r.ServiceID = "" }, "serviceId"},
		{"guest without contact", func(r *models.AppointmentRequest) { r.Owner = models.OwnerContact{} }, "owner"},
		{"before opening", func(r *models.AppointmentRequest) { r.Time = "08:00" }, "time"},
		{"window past closing", func(r *models.AppointmentRequest) { r.ServiceID = "spa"; r.Time = "16:00" }, "time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := guestRequest(tomorrow, "10:00", "basic")
			tt.mutate(&req)
			_, err := svc.CreateAppointment(req, models.Identity{})
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestCreateAppointmentRejectsElapsedSlotToday(t *testing.T) {
	svc := newTestBookingService(t, 2)

	today := testNow.Format("2006-01-02")
	_, err := svc.CreateAppointment(guestRequest(today, "11:00", "basic"), models.Identity{})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateAppointmentUnknownService(t *testing.T) {
	svc := newTestBookingService(t, 2)

	_, err := svc.CreateAppointment(guestRequest(tomorrow, "10:00", "boarding"), models.Identity{})
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestCreateAppointmentSlotFull(t *testing.T) {
	svc := newTestBookingService(t, 1)
	mustBook(t, svc, tomorrow, "10:00", "basic")

	_, err := svc.CreateAppointment(guestRequest(tomorrow, "10:00", "basic"), models.Identity{})
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "10:00", capErr.Time)
}

func TestCreateAppointmentWindowOverlapFull(t *testing.T) {
	// A spa window must fail when any covered hour is full, not just the start.
	svc := newTestBookingService(t, 1)
	mustBook(t, svc, tomorrow, "12:00", "basic")

	_, err := svc.CreateAppointment(guestRequest(tomorrow, "10:00", "spa"), models.Identity{})
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
}

func TestCreateAppointmentLastSlotRace(t *testing.T) {
	// Many callers racing for the last opening: exactly one wins, the rest
	// get a capacity error, and the stored state reflects a single booking.
	svc := newTestBookingService(t, 1)

	const racers = 16
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateAppointment(guestRequest(tomorrow, "10:00", "basic"), models.Identity{})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		var capErr *CapacityError
		require.ErrorAs(t, err, &capErr)
	}
	assert.Equal(t, 1, wins)

	appts, err := svc.ListAppointmentsByDate(tomorrow)
	require.NoError(t, err)
	assert.Len(t, appts, 1)
}

func TestCancelReleasesWindow(t *testing.T) {
	svc := newTestBookingService(t, 1)
	require.NoError(t, svc.Users.Create(&models.User{ID: "u1", Email: "mia@example.com"}))
	ident := models.Identity{Authenticated: true, UserID: "u1", Email: "mia@example.com"}

	req := guestRequest(tomorrow, "10:00", "spa")
	appt, err := svc.CreateAppointment(req, ident)
	require.NoError(t, err)

	require.NoError(t, svc.CancelAppointment(appt.ID, ident))

	stored, err := svc.GetAppointment(appt.ID, ident)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.Status)

	// All four hours are free again.
	_, err = svc.CreateAppointment(guestRequest(tomorrow, "10:00", "spa"), models.Identity{})
	require.NoError(t, err)
}

func TestCancelTwiceRejected(t *testing.T) {
	svc := newTestBookingService(t, 1)
	require.NoError(t, svc.Users.Create(&models.User{ID: "u1", Email: "mia@example.com"}))
	ident := models.Identity{Authenticated: true, UserID: "u1", Email: "mia@example.com"}

	appt, err := svc.CreateAppointment(guestRequest(tomorrow, "10:00", "basic"), ident)
	require.NoError(t, err)
	require.NoError(t, svc.CancelAppointment(appt.ID, ident))

	err = svc.CancelAppointment(appt.ID, ident)
	var trErr *TransitionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, models.StatusCancelled, trErr.From)
}

func TestMemberCannotCompleteOwnAppointment(t *testing.T) {
	svc := newTestBookingService(t, 1)
	ident := models.Identity{Authenticated: true, UserID: "u1"}

	appt, err := svc.CreateAppointment(guestRequest(tomorrow, "10:00", "basic"), ident)
	require.NoError(t, err)

	completed := models.StatusCompleted
	booked := models.StatusBooked

	// A member flipping their own appointment around the state machine.
	_, err = svc.UpdateAppointment(appt.ID, models.AppointmentUpdate{Status: &completed}, ident)
	require.NoError(t, err)

	_, err = svc.UpdateAppointment(appt.ID, models.AppointmentUpdate{Status: &booked}, ident)
	var trErr *TransitionError
	require.ErrorAs(t, err, &trErr)

	// The admin override may reopen it.
	adminIdent := models.Identity{Authenticated: true, Admin: true}
	_, err = svc.UpdateAppointment(appt.ID, models.AppointmentUpdate{Status: &booked}, adminIdent)
	require.NoError(t, err)
}

func TestUpdateFieldEditsKeepPriceFrozen(t *testing.T) {
	svc := newTestBookingService(t, 2)
	ident := models.Identity{Authenticated: true, UserID: "u1"}

	appt, err := svc.CreateAppointment(guestRequest(tomorrow, "10:00", "full"), ident)
	require.NoError(t, err)
	originalPrice := appt.TotalPrice

	name := "Bella"
	notes := "nervous around dryers"
	updated, err := svc.UpdateAppointment(appt.ID, models.AppointmentUpdate{PetName: &name, Notes: &notes}, ident)
	require.NoError(t, err)

	assert.Equal(t, "Bella", updated.PetName)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, originalPrice, updated.TotalPrice)
	assert.Equal(t, "10:00", updated.Time)
}

func TestUpdateRescheduleMovesWindow(t *testing.T) {
	svc := newTestBookingService(t, 1)
	ident := models.Identity{Authenticated: true, UserID: "u1"}

	appt, err := svc.CreateAppointment(guestRequest(tomorrow, "10:00", "basic"), ident)
	require.NoError(t, err)

	newTime := "14:00"
	updated, err := svc.UpdateAppointment(appt.ID, models.AppointmentUpdate{Time: &newTime}, ident)
	require.NoError(t, err)
	assert.Equal(t, 14, updated.Hour)
	assert.Equal(t, "14:00", updated.Time)

	// The old hour is free again and the new one is taken.
	_, err = svc.CreateAppointment(guestRequest(tomorrow, "10:00", "basic"), models.Identity{})
	require.NoError(t, err)
	_, err = svc.CreateAppointment(guestRequest(tomorrow, "14:00", "basic"), models.Identity{})
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
}

func TestUpdateRescheduleToFullSlotFails(t *testing.T) {
	svc := newTestBookingService(t, 1)
	ident := models.Identity{Authenticated: true, UserID: "u1"}

	appt, err := svc.CreateAppointment(guestRequest(tomorrow, "10:00", "basic"), ident)
	require.NoError(t, err)
	mustBook(t, svc, tomorrow, "14:00", "basic")

	newTime := "14:00"
	_, err = svc.UpdateAppointment(appt.ID, models.AppointmentUpdate{Time: &newTime}, ident)
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)

	// The original reservation survives the failed move.
	stored, err := svc.GetAppointment(appt.ID, ident)
	require.NoError(t, err)
	assert.Equal(t, "10:00", stored.Time)
	_, err = svc.CreateAppointment(guestRequest(tomorrow, "10:00", "basic"), models.Identity{})
	require.ErrorAs(t, err, &capErr)
}

func TestUpdateServiceChangeReprices(t *testing.T) {
	svc := newTestBookingService(t, 2)
	require.NoError(t, svc.Users.Create(&models.User{ID: "u1", Email: "mia@example.com"}))
	ident := models.Identity{Authenticated: true, UserID: "u1", Email: "mia@example.com"}

	appt, err := svc.CreateAppointment(guestRequest(tomorrow, "10:00", "basic"), ident)
	require.NoError(t, err)

	newService := "full"
	updated, err := svc.UpdateAppointment(appt.ID, models.AppointmentUpdate{ServiceID: &newService}, ident)
	require.NoError(t, err)
	assert.Equal(t, "full", updated.ServiceID)
	assert.Equal(t, 2, updated.DurationHours)
	assert.Equal(t, 108.0, updated.TotalPrice)
}

func TestUpdateRejectsStatusPlusReschedule(t *testing.T) {
	svc := newTestBookingService(t, 2)
	ident := models.Identity{Authenticated: true, UserID: "u1"}

	appt, err := svc.CreateAppointment(guestRequest(tomorrow, "10:00", "basic"), ident)
	require.NoError(t, err)

	cancelled := models.StatusCancelled
	newTime := "14:00"
	_, err = svc.UpdateAppointment(appt.ID, models.AppointmentUpdate{Status: &cancelled, Time: &newTime}, ident)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestAppointmentsHiddenFromStrangers(t *testing.T) {
	svc := newTestBookingService(t, 2)
	owner := models.Identity{Authenticated: true, UserID: "u1"}
	stranger := models.Identity{Authenticated: true, UserID: "u2"}

	appt, err := svc.CreateAppointment(guestRequest(tomorrow, "10:00", "basic"), owner)
	require.NoError(t, err)

	_, err = svc.GetAppointment(appt.ID, stranger)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)

	err = svc.CancelAppointment(appt.ID, stranger)
	require.ErrorAs(t, err, &nfErr)
}

func TestLazyCompletionOnRead(t *testing.T) {
	svc := newTestBookingService(t, 2)
	ident := models.Identity{Authenticated: true, UserID: "u1"}
	repo := svc.Repo.(*fakeApptRepo)

	// Seed a booking whose start has already passed; the repository does not
	// judge dates, only the service's create path does.
	today := testNow.Format("2006-01-02")
	past := &models.Appointment{
		ID: "past-appt", PetName: "Rex", PetType: models.PetTypeDog,
		Date: today, Hour: 9, Time: "09:00",
		ServiceID: "basic", DurationHours: 1,
		Status: models.StatusBooked, UserID: "u1",
	}
	require.NoError(t, repo.ReserveAndInsert(past, 2))

	got, err := svc.GetAppointment("past-appt", ident)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)

	// The flip was persisted, not just decorated onto the response.
	stored, err := repo.GetByID("past-appt")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestLazyCompletionSkipsFutureAndCancelled(t *testing.T) {
	svc := newTestBookingService(t, 2)
	ident := models.Identity{Authenticated: true, UserID: "u1"}

	appt, err := svc.CreateAppointment(guestRequest(tomorrow, "10:00", "basic"), ident)
	require.NoError(t, err)
	require.NoError(t, svc.CancelAppointment(appt.ID, ident))

	future, err := svc.CreateAppointment(guestRequest(tomorrow, "14:00", "basic"), ident)
	require.NoError(t, err)

	appts, err := svc.ListUserAppointments(ident)
	require.NoError(t, err)
	byID := make(map[string]string, len(appts))
	for _, a := range appts {
		byID[a.ID] = a.Status
	}
	assert.Equal(t, models.StatusCancelled, byID[appt.ID])
	assert.Equal(t, models.StatusBooked, byID[future.ID])
}
