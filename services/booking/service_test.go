package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"amora/models"

	"go.uber.org/zap"
)

type stubCompanionDir struct {
	profile *models.CompanionProfile
	err     error
	lookups int
}

func (s *stubCompanionDir) GetProfile(ctx context.Context, id string) (*models.CompanionProfile, error) {
	s.lookups++
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func (s *stubCompanionDir) ListProfiles(ctx context.Context) ([]models.CompanionProfile, error) {
	return nil, nil
}

func (s *stubCompanionDir) RegisterProfile(ctx context.Context, profile models.CompanionProfile) (string, error) {
	return "", nil
}

func (s *stubCompanionDir) UpdateFCMToken(ctx context.Context, id, token string) error {
	return nil
}

type memoryBookingRepo struct {
	records   []models.BookingRecord
	createErr error
}

func (m *memoryBookingRepo) Create(ctx context.Context, record models.BookingRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.records = append(m.records, record)
	return nil
}

func (m *memoryBookingRepo) CreateMany(ctx context.Context, records []models.BookingRecord) error {
	m.records = append(m.records, records...)
	return nil
}

func (m *memoryBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	for i := range m.records {
		if m.records[i].ID == id {
			return &m.records[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memoryBookingRepo) GetByRequester(ctx context.Context, requesterID string) ([]models.BookingRecord, error) {
	var out []models.BookingRecord
	for _, r := range m.records {
		if r.RequesterID == requesterID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryBookingRepo) GetByCompanion(ctx context.Context, companionID string) ([]models.BookingRecord, error) {
	return nil, nil
}

func (m *memoryBookingRepo) UpdatePaymentStatus(ctx context.Context, id, status string) error {
	return nil
}

func newTestService(dir *stubCompanionDir, repo *memoryBookingRepo) *DefaultBookingService {
	catalog := NewCatalog()
	return &DefaultBookingService{
		Catalog:      catalog,
		Builder:      &RecordBuilder{Catalog: catalog},
		CompanionDir: dir,
		Repo:         repo,
		Logger:       zap.NewNop(),
		Now:          func() time.Time { return time.Date(2024, time.May, 20, 9, 0, 0, 0, time.UTC) },
	}
}

func TestCreateBookingPersistsRecurringSet(t *testing.T) {
	dir := &stubCompanionDir{profile: &models.CompanionProfile{ID: "c1", HourlyRate: 50}}
	repo := &memoryBookingRepo{}
	svc := newTestService(dir, repo)

	req := validRequest()
	req.IsRecurring = true
	req.RecurringFrequency = "weekly"

	set, err := svc.CreateBooking(context.Background(), req, "user-1")
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if len(set.Recurring) != DefaultRecurrenceCount {
		t.Fatalf("expected %d recurring records, got %d", DefaultRecurrenceCount, len(set.Recurring))
	}
	if len(repo.records) != 1+DefaultRecurrenceCount {
		t.Fatalf("expected %d persisted records, got %d", 1+DefaultRecurrenceCount, len(repo.records))
	}
	if repo.records[0].ID != set.Primary.ID {
		t.Errorf("primary must be persisted first, got %q", repo.records[0].ID)
	}
	if dir.lookups != 1 {
		t.Errorf("expected one directory lookup, got %d", dir.lookups)
	}
}

func TestCreateBookingUsesProfileRate(t *testing.T) {
	dir := &stubCompanionDir{profile: &models.CompanionProfile{ID: "c1", HourlyRate: 75}}
	repo := &memoryBookingRepo{}
	svc := newTestService(dir, repo)

	req := validRequest()
	req.PackageID = ""

	set, err := svc.CreateBooking(context.Background(), req, "user-1")
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	want := 75.0 * DefaultBookingHours
	if set.Primary.TotalPrice != want {
		t.Errorf("TotalPrice = %v, want %v", set.Primary.TotalPrice, want)
	}
}

func TestCreateBookingDirectoryFailureFallsBack(t *testing.T) {
	dir := &stubCompanionDir{err: errors.New("directory unavailable")}
	repo := &memoryBookingRepo{}
	svc := newTestService(dir, repo)

	req := validRequest()
	req.PackageID = ""

	set, err := svc.CreateBooking(context.Background(), req, "user-1")
	if err != nil {
		t.Fatalf("directory failure must not fail the booking: %v", err)
	}
	want := DefaultHourlyRate * DefaultBookingHours
	if set.Primary.TotalPrice != want {
		t.Errorf("TotalPrice = %v, want default-rate %v", set.Primary.TotalPrice, want)
	}
}

func TestCreateBookingValidationPersistsNothing(t *testing.T) {
	dir := &stubCompanionDir{profile: &models.CompanionProfile{ID: "c1", HourlyRate: 50}}
	repo := &memoryBookingRepo{}
	svc := newTestService(dir, repo)

	req := validRequest()
	req.Date = ""

	if _, err := svc.CreateBooking(context.Background(), req, "user-1"); err == nil {
		t.Fatal("expected validation error")
	}
	if len(repo.records) != 0 {
		t.Errorf("validation failure must not persist records, got %d", len(repo.records))
	}
}

func TestCreateBookingRepoFailureSurfaces(t *testing.T) {
	dir := &stubCompanionDir{profile: &models.CompanionProfile{ID: "c1", HourlyRate: 50}}
	repo := &memoryBookingRepo{createErr: errors.New("write failed")}
	svc := newTestService(dir, repo)

	if _, err := svc.CreateBooking(context.Background(), validRequest(), "user-1"); err == nil {
		t.Fatal("expected repository error to surface")
	}
}

func TestListForRequester(t *testing.T) {
	dir := &stubCompanionDir{profile: &models.CompanionProfile{ID: "c1", HourlyRate: 50}}
	repo := &memoryBookingRepo{}
	svc := newTestService(dir, repo)

	if _, err := svc.CreateBooking(context.Background(), validRequest(), "user-1"); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if _, err := svc.CreateBooking(context.Background(), validRequest(), "user-2"); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	mine, err := svc.ListForRequester(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListForRequester: %v", err)
	}
	if len(mine) != 1 || mine[0].RequesterID != "user-1" {
		t.Errorf("unexpected listing: %+v", mine)
	}
}
