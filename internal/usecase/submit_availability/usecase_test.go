package submit_availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/domain"
	slotRepo "github.com/premoprojekt2024TM/Barber-sub000/internal/infra/storage/slot"
	"github.com/premoprojekt2024TM/Barber-sub000/internal/integrations/userservice"
	"github.com/premoprojekt2024TM/Barber-sub000/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserClient struct {
	users map[int64]*userservice.User
}

func (c *fakeUserClient) GetUser(_ context.Context, userID int64) (*userservice.User, error) {
	u, ok := c.users[userID]
	if !ok {
		return nil, userservice.ErrUserNotFound
	}
	return u, nil
}

// fakeSlotRepo in-memory репозиторий слотов с уникальностью (owner, day, label)
type fakeSlotRepo struct {
	nextID int64
	slots  map[int64]*domain.Slot

	createErr error
	failOnDay domain.Weekday
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{nextID: 1, slots: make(map[int64]*domain.Slot)}
}

func (r *fakeSlotRepo) Create(_ context.Context, s *domain.Slot) (*domain.Slot, error) {
	if r.createErr != nil && (r.failOnDay == "" || r.failOnDay == s.Day) {
		return nil, r.createErr
	}

	for _, existing := range r.slots {
		if existing.OwnerID == s.OwnerID && existing.Day == s.Day && existing.Label == s.Label {
			return nil, slotRepo.ErrDuplicateSlot
		}
	}

	created := *s
	created.ID = r.nextID
	r.nextID++
	r.slots[created.ID] = &created
	return &created, nil
}

func (r *fakeSlotRepo) ListByOwnerAndDay(_ context.Context, ownerID int64, day domain.Weekday) ([]*domain.Slot, error) {
	var result []*domain.Slot
	for _, s := range r.slots {
		if s.OwnerID == ownerID && s.Day == day {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeSlotRepo) DeleteAvailableByIDs(_ context.Context, ids []int64) (int64, error) {
	var deleted int64
	for _, id := range ids {
		s, ok := r.slots[id]
		if ok && s.IsAvailable() {
			delete(r.slots, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *fakeSlotRepo) add(ownerID int64, day domain.Weekday, label string, status domain.SlotStatus) *domain.Slot {
	s := &domain.Slot{
		ID:      r.nextID,
		OwnerID: ownerID,
		Day:     day,
		Label:   types.TimeString(label),
		Status:  status,
	}
	r.nextID++
	r.slots[s.ID] = s
	return s
}

func workerClient(id int64) *fakeUserClient {
	return &fakeUserClient{users: map[int64]*userservice.User{
		id: {ID: id, Role: domain.RoleWorker, DisplayName: "Мастер"},
	}}
}

func TestExecute_CreatesSubmittedWeek(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := NewUseCase(repo, workerClient(1), fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		WorkerID: 1,
		Week: map[string][]string{
			"monday": {"09:00", "10:00"},
			"friday": {"15:00"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Created)
	assert.Equal(t, 0, resp.Deleted)
	assert.Equal(t, 0, resp.Unchanged)
	assert.Len(t, repo.slots, 3)
	// Отчет содержит все семь дней
	assert.Len(t, resp.Days, 7)
}

func TestExecute_SecondIdenticalSubmitIsZeroWrites(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := NewUseCase(repo, workerClient(1), fakeTxManager{}, noopLogger{})

	week := map[string][]string{"monday": {"09:00", "10:00"}}

	_, err := uc.Execute(context.Background(), &Request{WorkerID: 1, Week: week})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{WorkerID: 1, Week: week})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Created)
	assert.Equal(t, 0, resp.Deleted)
	assert.Equal(t, 2, resp.Unchanged)
}

func TestExecute_DeletesOmittedAvailableSlots(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.add(1, domain.Monday, "09:00", domain.SlotAvailable)
	repo.add(1, domain.Monday, "10:00", domain.SlotAvailable)

	uc := NewUseCase(repo, workerClient(1), fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		WorkerID: 1,
		Week:     map[string][]string{"monday": {"09:00"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Created)
	assert.Equal(t, 1, resp.Deleted)
	assert.Equal(t, 1, resp.Unchanged)
	assert.Len(t, repo.slots, 1)
}

func TestExecute_AcceptedSlotsAreNeverTouched(t *testing.T) {
	repo := newFakeSlotRepo()
	accepted := repo.add(1, domain.Monday, "10:00", domain.SlotAccepted)

	uc := NewUseCase(repo, workerClient(1), fakeTxManager{}, noopLogger{})

	// Пустая неделя: открытые слоты были бы удалены, принятый остается
	resp, err := uc.Execute(context.Background(), &Request{
		WorkerID: 1,
		Week:     map[string][]string{},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Deleted)
	survivor, ok := repo.slots[accepted.ID]
	require.True(t, ok, "accepted slot must survive reconciliation")
	assert.Equal(t, domain.SlotAccepted, survivor.Status)
}

func TestExecute_ResubmitWithAcceptedLabelIsUnchanged(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.add(1, domain.Monday, "10:00", domain.SlotAccepted)

	uc := NewUseCase(repo, workerClient(1), fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		WorkerID: 1,
		Week:     map[string][]string{"monday": {"10:00"}},
	})
	require.NoError(t, err)

	// Метка совпадает с принятым слотом: ни вставки, ни удаления
	assert.Equal(t, 0, resp.Created)
	assert.Equal(t, 1, resp.Unchanged)
	assert.Len(t, repo.slots, 1)
}

func TestExecute_InvalidWeekRejectedWholesale(t *testing.T) {
	for name, week := range map[string]map[string][]string{
		"unknown day":       {"someday": {"09:00"}},
		"bad label":         {"monday": {"9:00"}},
		"out of range":      {"monday": {"25:00"}},
		"duplicate in day":  {"monday": {"09:00", "09:00"}},
	} {
		t.Run(name, func(t *testing.T) {
			repo := newFakeSlotRepo()
			uc := NewUseCase(repo, workerClient(1), fakeTxManager{}, noopLogger{})

			_, err := uc.Execute(context.Background(), &Request{WorkerID: 1, Week: week})
			require.ErrorIs(t, err, ErrValidation)

			// Ни один день не применен
			assert.Empty(t, repo.slots)
		})
	}
}

func TestExecute_WorkerChecks(t *testing.T) {
	repo := newFakeSlotRepo()
	week := map[string][]string{"monday": {"09:00"}}

	// Пользователь не найден
	uc := NewUseCase(repo, &fakeUserClient{users: map[int64]*userservice.User{}}, fakeTxManager{}, noopLogger{})
	_, err := uc.Execute(context.Background(), &Request{WorkerID: 1, Week: week})
	assert.ErrorIs(t, err, ErrWorkerNotFound)

	// Пользователь существует, но не мастер
	clientOnly := &fakeUserClient{users: map[int64]*userservice.User{
		1: {ID: 1, Role: domain.RoleClient, DisplayName: "Клиент"},
	}}
	uc = NewUseCase(repo, clientOnly, fakeTxManager{}, noopLogger{})
	_, err = uc.Execute(context.Background(), &Request{WorkerID: 1, Week: week})
	assert.ErrorIs(t, err, ErrNotWorker)

	assert.Empty(t, repo.slots)
}

func TestExecute_MidWeekFailureKeepsAppliedDays(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.createErr = errors.New("connection reset")
	repo.failOnDay = domain.Wednesday

	uc := NewUseCase(repo, workerClient(1), fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		WorkerID: 1,
		Week: map[string][]string{
			"monday":    {"09:00"},
			"wednesday": {"12:00"},
			"friday":    {"15:00"},
		},
	})
	require.ErrorIs(t, err, ErrReconcile)

	// Понедельник применен до ошибки среды, пятница не применялась
	require.Len(t, repo.slots, 1)
	for _, s := range repo.slots {
		assert.Equal(t, domain.Monday, s.Day)
	}
}

func TestExecute_ConcurrentDuplicateInsertCountsAsUnchanged(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.createErr = slotRepo.ErrDuplicateSlot

	uc := NewUseCase(repo, workerClient(1), fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		WorkerID: 1,
		Week:     map[string][]string{"monday": {"09:00"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Created)
	assert.Equal(t, 1, resp.Unchanged)
}
