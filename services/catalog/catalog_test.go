package catalog

import (
	"testing"

	catalogRepo "petshop/database/repository/catalog"
	"petshop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogRepo struct {
	services map[string]models.ServiceDefinition
	dayCare  map[string]models.DayCareOption
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		services: make(map[string]models.ServiceDefinition),
		dayCare:  make(map[string]models.DayCareOption),
	}
}

func (r *fakeCatalogRepo) GetService(id string) (*models.ServiceDefinition, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &s, nil
}

func (r *fakeCatalogRepo) ListServices() ([]models.ServiceDefinition, error) {
	var out []models.ServiceDefinition
	for _, s := range r.services {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeCatalogRepo) CreateService(svc *models.ServiceDefinition) error {
	r.services[svc.ID] = *svc
	return nil
}

func (r *fakeCatalogRepo) UpdateService(svc *models.ServiceDefinition) error {
	if _, ok := r.services[svc.ID]; !ok {
		return catalogRepo.ErrNotFound
	}
	r.services[svc.ID] = *svc
	return nil
}

func (r *fakeCatalogRepo) DeleteService(id string) error {
	if _, ok := r.services[id]; !ok {
		return catalogRepo.ErrNotFound
	}
	delete(r.services, id)
	return nil
}

func (r *fakeCatalogRepo) CountServices() (int64, error) {
	return int64(len(r.services)), nil
}

func (r *fakeCatalogRepo) GetDayCareOption(optionType string) (*models.DayCareOption, error) {
	o, ok := r.dayCare[optionType]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &o, nil
}

func (r *fakeCatalogRepo) ListDayCareOptions() ([]models.DayCareOption, error) {
	var out []models.DayCareOption
	for _, o := range r.dayCare {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeCatalogRepo) UpsertDayCareOption(opt *models.DayCareOption) error {
	r.dayCare[opt.Type] = *opt
	return nil
}

func (r *fakeCatalogRepo) CountDayCareOptions() (int64, error) {
	return int64(len(r.dayCare)), nil
}

type fakeSettingsRepo struct {
	stored *models.AppointmentSettings
}

func (r *fakeSettingsRepo) Get() (*models.AppointmentSettings, error) {
	return r.stored, nil
}

func (r *fakeSettingsRepo) Upsert(settings *models.AppointmentSettings) error {
	r.stored = settings
	return nil
}

func newTestCatalogService() (*DefaultCatalogService, *fakeCatalogRepo, *fakeSettingsRepo) {
	repo := newFakeCatalogRepo()
	settings := &fakeSettingsRepo{}
	return NewDefaultCatalogService(repo, settings, nil, 5), repo, settings
}

func TestSeedInsertsDefaultsOnce(t *testing.T) {
	svc, repo, _ := newTestCatalogService()

	require.NoError(t, svc.Seed())
	assert.Len(t, repo.services, 3)
	assert.Len(t, repo.dayCare, 2)

	basic, err := svc.GetService("basic")
	require.NoError(t, err)
	assert.Equal(t, 60.0, basic.BasePrice)
	assert.Equal(t, 1, basic.DurationHours)
	assert.Equal(t, 8.0, basic.MemberDiscountPercent)

	spa, err := svc.GetService("spa")
	require.NoError(t, err)
	assert.Equal(t, 220.0, spa.BasePrice)
	assert.Equal(t, 4, spa.DurationHours)

	longTerm, err := svc.GetDayCareOption(models.DayCareLongTerm)
	require.NoError(t, err)
	assert.Equal(t, 80.0, longTerm.PricePerDay)
}

func TestSeedPreservesAdminEdits(t *testing.T) {
	svc, _, _ := newTestCatalogService()
	require.NoError(t, svc.Seed())

	edited, err := svc.GetService("basic")
	require.NoError(t, err)
	edited.BasePrice = 75
	require.NoError(t, svc.UpdateService(edited))
	require.NoError(t, svc.DeleteService("spa"))

	// A restart re-runs Seed; the edit and the deletion must both survive.
	require.NoError(t, svc.Seed())

	basic, err := svc.GetService("basic")
	require.NoError(t, err)
	assert.Equal(t, 75.0, basic.BasePrice)

	_, err = svc.GetService("spa")
	assert.ErrorIs(t, err, catalogRepo.ErrNotFound)
}

func TestEffectiveCapacityPrecedence(t *testing.T) {
	svc, _, settings := newTestCatalogService()

	// Nothing stored anywhere: the configured default applies.
	cap, err := svc.EffectiveCapacity(&models.ServiceDefinition{ID: "basic"})
	require.NoError(t, err)
	assert.Equal(t, 5, cap)

	// A stored global setting overrides the default.
	require.NoError(t, settings.Upsert(&models.AppointmentSettings{
		SettingName:            models.DefaultSettingName,
		MaxBookingsPerTimeSlot: 3,
	}))
	cap, err = svc.EffectiveCapacity(&models.ServiceDefinition{ID: "basic"})
	require.NoError(t, err)
	assert.Equal(t, 3, cap)

	// A per-service limit beats both.
	cap, err = svc.EffectiveCapacity(&models.ServiceDefinition{ID: "vip", CapacityLimit: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, cap)
}

func TestUpdateSettings(t *testing.T) {
	svc, _, _ := newTestCatalogService()

	_, err := svc.UpdateSettings(0)
	assert.Error(t, err)

	stored, err := svc.UpdateSettings(7)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.MaxBookingsPerTimeSlot)

	got, err := svc.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, 7, got.MaxBookingsPerTimeSlot)
}

func TestValidateServiceRejectsBadDefinitions(t *testing.T) {
	svc, _, _ := newTestCatalogService()

	bad := []models.ServiceDefinition{
		{ID: "", BasePrice: 10, DurationHours: 1},
		{ID: "x", BasePrice: -1, DurationHours: 1},
		{ID: "x", BasePrice: 10, DurationHours: 0},
		{ID: "x", BasePrice: 10, DurationHours: 1, MemberDiscountPercent: 120},
		{ID: "x", BasePrice: 10, DurationHours: 1, CapacityLimit: -2},
	}
	for i := range bad {
		assert.Error(t, svc.CreateService(&bad[i]), "case %d", i)
	}
}
