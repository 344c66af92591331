package booking

import (
	"fmt"
	"sync"

	appointmentRepo "petshop/database/repository/appointment"
	catalogRepo "petshop/database/repository/catalog"
	userRepo "petshop/database/repository/user"
	"petshop/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeApptRepo is an in-memory AppointmentRepository with the same atomicity
// guarantees as the Mongo implementation: a reservation either claims every
// hour of the window or claims nothing.
type fakeApptRepo struct {
	mu       sync.Mutex
	appts    map[string]models.Appointment
	counters map[string]int
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{
		appts:    make(map[string]models.Appointment),
		counters: make(map[string]int),
	}
}

func counterKey(date string, hour int) string {
	return fmt.Sprintf("%s|%d", date, hour)
}

func (r *fakeApptRepo) GetByID(id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	return &a, nil
}

func (r *fakeApptRepo) FindByDate(date string, excludeCancelled bool) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Date != date {
			continue
		}
		if excludeCancelled && a.Status == models.StatusCancelled {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeApptRepo) FindByUser(userID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) FindAll(filter bson.M) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeApptRepo) UpdateByID(id string, patch bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appts[id]
	if !ok {
		return appointmentRepo.ErrNotFound
	}
	for k, v := range patch {
		switch k {
		case "status":
			a.Status = v.(string)
		case "petName":
			a.PetName = v.(string)
		case "petType":
			a.PetType = v.(string)
		case "notes":
			a.Notes = v.(string)
		case "totalPrice":
			a.TotalPrice = v.(float64)
		case "owner":
			a.Owner = v.(models.OwnerContact)
		case "dayCare":
			if v == nil {
				a.DayCare = nil
			} else if sel, ok := v.(*models.DayCareSelection); ok {
				a.DayCare = sel
			}
		}
	}
	r.appts[id] = a
	return nil
}

func (r *fakeApptRepo) MarkCompleted(ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if a, ok := r.appts[id]; ok && a.Status == models.StatusBooked {
			a.Status = models.StatusCompleted
			r.appts[id] = a
		}
	}
	return nil
}

func (r *fakeApptRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.appts, id)
	return nil
}

func (r *fakeApptRepo) ReserveAndInsert(appt *models.Appointment, capacity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.claimLocked(appt.Date, appt.Hour, appt.DurationHours, capacity); err != nil {
		return err
	}
	r.appts[appt.ID] = *appt
	return nil
}

func (r *fakeApptRepo) Reschedule(appt *models.Appointment, oldDate string, oldHour, oldDuration, capacity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseLocked(oldDate, oldHour, oldDuration)
	if err := r.claimLocked(appt.Date, appt.Hour, appt.DurationHours, capacity); err != nil {
		// Restore the old window so the failed move leaves state untouched.
		for h := oldHour; h < oldHour+oldDuration; h++ {
			r.counters[counterKey(oldDate, h)]++
		}
		return err
	}
	r.appts[appt.ID] = *appt
	return nil
}

func (r *fakeApptRepo) ReleaseWindow(date string, hour, duration int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseLocked(date, hour, duration)
	return nil
}

func (r *fakeApptRepo) claimLocked(date string, hour, duration, capacity int) error {
	for h := hour; h < hour+duration; h++ {
		if r.counters[counterKey(date, h)] >= capacity {
			return appointmentRepo.ErrSlotFull
		}
	}
	for h := hour; h < hour+duration; h++ {
		r.counters[counterKey(date, h)]++
	}
	return nil
}

func (r *fakeApptRepo) releaseLocked(date string, hour, duration int) {
	for h := hour; h < hour+duration; h++ {
		key := counterKey(date, h)
		if r.counters[key] > 0 {
			r.counters[key]--
		}
	}
}

// fakeCatalog is an in-memory CatalogService.
type fakeCatalog struct {
	services map[string]models.ServiceDefinition
	dayCare  map[string]models.DayCareOption
	capacity int
}

func newFakeCatalog(capacity int, services ...models.ServiceDefinition) *fakeCatalog {
	c := &fakeCatalog{
		services: make(map[string]models.ServiceDefinition),
		dayCare: map[string]models.DayCareOption{
			models.DayCareDaily:    {Type: models.DayCareDaily, PricePerDay: 25},
			models.DayCareLongTerm: {Type: models.DayCareLongTerm, PricePerDay: 80},
		},
		capacity: capacity,
	}
	for _, s := range services {
		c.services[s.ID] = s
	}
	return c
}

func (c *fakeCatalog) GetService(id string) (*models.ServiceDefinition, error) {
	s, ok := c.services[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &s, nil
}

func (c *fakeCatalog) ListServices() ([]models.ServiceDefinition, error) {
	var out []models.ServiceDefinition
	for _, s := range c.services {
		out = append(out, s)
	}
	return out, nil
}

func (c *fakeCatalog) CreateService(svc *models.ServiceDefinition) error {
	c.services[svc.ID] = *svc
	return nil
}

func (c *fakeCatalog) UpdateService(svc *models.ServiceDefinition) error {
	c.services[svc.ID] = *svc
	return nil
}

func (c *fakeCatalog) DeleteService(id string) error {
	delete(c.services, id)
	return nil
}

func (c *fakeCatalog) GetDayCareOption(optionType string) (*models.DayCareOption, error) {
	o, ok := c.dayCare[optionType]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &o, nil
}

func (c *fakeCatalog) ListDayCareOptions() ([]models.DayCareOption, error) {
	var out []models.DayCareOption
	for _, o := range c.dayCare {
		out = append(out, o)
	}
	return out, nil
}

func (c *fakeCatalog) UpdateDayCareOption(opt *models.DayCareOption) error {
	c.dayCare[opt.Type] = *opt
	return nil
}

func (c *fakeCatalog) EffectiveCapacity(svc *models.ServiceDefinition) (int, error) {
	if svc != nil && svc.CapacityLimit > 0 {
		return svc.CapacityLimit, nil
	}
	return c.capacity, nil
}

func (c *fakeCatalog) GetSettings() (*models.AppointmentSettings, error) {
	return &models.AppointmentSettings{
		SettingName:            models.DefaultSettingName,
		MaxBookingsPerTimeSlot: c.capacity,
	}, nil
}

func (c *fakeCatalog) UpdateSettings(maxBookings int) (*models.AppointmentSettings, error) {
	c.capacity = maxBookings
	return c.GetSettings()
}

func (c *fakeCatalog) Seed() error { return nil }

// fakeUserRepo backs the membership probe.
type fakeUserRepo struct {
	byEmail map[string]models.User
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{byEmail: make(map[string]models.User)}
	for _, u := range users {
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }

func (r *fakeUserRepo) Create(u *models.User) error {
	r.byEmail[u.Email] = *u
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	r.byEmail[u.Email] = *u
	return nil
}

func (r *fakeUserRepo) Delete(id string) error { return nil }

// fakeNotifier records stored notifications.
type fakeNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *fakeNotifier) Notify(userID, notifType, title, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notifType)
	return nil
}

// fakeReminders records scheduled reminders.
type fakeReminders struct {
	mu    sync.Mutex
	appts []string
}

func (f *fakeReminders) ScheduleAppointmentReminder(appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appts = append(f.appts, appt.ID)
	return nil
}
