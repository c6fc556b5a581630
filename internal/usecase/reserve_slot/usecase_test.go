package reserve_slot

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/domain"
	appointmentRepo "github.com/premoprojekt2024TM/Barber-sub000/internal/infra/storage/appointment"
	slotRepo "github.com/premoprojekt2024TM/Barber-sub000/internal/infra/storage/slot"
	"github.com/premoprojekt2024TM/Barber-sub000/internal/integrations/userservice"
	"github.com/premoprojekt2024TM/Barber-sub000/pkg/ptr"
	"github.com/premoprojekt2024TM/Barber-sub000/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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

// fakeSlotRepo мьютекс повторяет блокировку строки: условная смена статуса
// атомарна, как условный UPDATE в настоящем репозитории
type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[int64]*domain.Slot
}

func newFakeSlotRepo(slots ...*domain.Slot) *fakeSlotRepo {
	r := &fakeSlotRepo{slots: make(map[int64]*domain.Slot)}
	for _, s := range slots {
		r.slots[s.ID] = s
	}
	return r
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSlotRepo) MarkAccepted(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[id]
	if !ok || s.Status != domain.SlotAvailable {
		return slotRepo.ErrSlotNotAvailable
	}
	s.Status = domain.SlotAccepted
	return nil
}

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	nextID       int64
	appointments []*domain.Appointment
}

func (r *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// UNIQUE (slot_id): вторая запись на тот же слот невозможна
	for _, existing := range r.appointments {
		if existing.SlotID == a.SlotID {
			return nil, appointmentRepo.ErrSlotAlreadyBooked
		}
	}

	r.nextID++
	created := *a
	created.ID = r.nextID
	r.appointments = append(r.appointments, &created)
	return &created, nil
}

func availableSlot(id, ownerID int64) *domain.Slot {
	return &domain.Slot{
		ID:      id,
		OwnerID: ownerID,
		Day:     domain.Monday,
		Label:   types.TimeString("09:00"),
		Status:  domain.SlotAvailable,
	}
}

func testUsers() *fakeUserClient {
	return &fakeUserClient{users: map[int64]*userservice.User{
		1: {ID: 1, Role: domain.RoleWorker, DisplayName: "Мастер Иван"},
		2: {ID: 2, Role: domain.RoleClient, DisplayName: "Клиент Анна"},
		3: {ID: 3, Role: domain.RoleClient, DisplayName: "Клиент Борис"},
	}}
}

func TestExecute_Success(t *testing.T) {
	slots := newFakeSlotRepo(availableSlot(10, 1))
	appointments := &fakeAppointmentRepo{}
	uc := NewUseCase(slots, appointments, testUsers(), fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID: 2,
		WorkerID: 1,
		SlotID:   10,
		Notes:    ptr.Ptr("подровнять виски"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Клиент Анна", resp.ClientName)
	assert.Equal(t, "Мастер Иван", resp.WorkerName)
	assert.Equal(t, domain.Monday, resp.SlotDay)
	assert.Equal(t, "09:00", resp.SlotLabel.String())

	// Слот переведен в accepted, запись создана - оба изменения произошли
	s, err := slots.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotAccepted, s.Status)
	assert.Len(t, appointments.appointments, 1)
}

func TestExecute_SelfBookingRejected(t *testing.T) {
	slots := newFakeSlotRepo(availableSlot(10, 1))
	uc := NewUseCase(slots, &fakeAppointmentRepo{}, testUsers(), fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ClientID: 1, WorkerID: 1, SlotID: 10})
	require.ErrorIs(t, err, ErrSelfBooking)

	// Слот не тронут
	s, getErr := slots.GetByID(context.Background(), 10)
	require.NoError(t, getErr)
	assert.Equal(t, domain.SlotAvailable, s.Status)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(newFakeSlotRepo(), &fakeAppointmentRepo{}, testUsers(), fakeTxManager{}, noopLogger{})

	longNotes := make([]byte, domain.MaxNotesLength+1)
	for i := range longNotes {
		longNotes[i] = 'x'
	}

	for name, req := range map[string]*Request{
		"zero client":    {ClientID: 0, WorkerID: 1, SlotID: 10},
		"zero worker":    {ClientID: 2, WorkerID: 0, SlotID: 10},
		"zero slot":      {ClientID: 2, WorkerID: 1, SlotID: 0},
		"notes too long": {ClientID: 2, WorkerID: 1, SlotID: 10, Notes: ptr.Ptr(string(longNotes))},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_WorkerNotFoundOrWrongRole(t *testing.T) {
	slots := newFakeSlotRepo(availableSlot(10, 99))
	uc := NewUseCase(slots, &fakeAppointmentRepo{}, testUsers(), fakeTxManager{}, noopLogger{})

	// Мастер не существует
	_, err := uc.Execute(context.Background(), &Request{ClientID: 2, WorkerID: 99, SlotID: 10})
	assert.ErrorIs(t, err, ErrWorkerNotFound)

	// Пользователь существует, но роль - клиент
	_, err = uc.Execute(context.Background(), &Request{ClientID: 2, WorkerID: 3, SlotID: 10})
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestExecute_ClientNotFound(t *testing.T) {
	slots := newFakeSlotRepo(availableSlot(10, 1))
	uc := NewUseCase(slots, &fakeAppointmentRepo{}, testUsers(), fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ClientID: 42, WorkerID: 1, SlotID: 10})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := NewUseCase(newFakeSlotRepo(), &fakeAppointmentRepo{}, testUsers(), fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ClientID: 2, WorkerID: 1, SlotID: 10})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotOwnedByAnotherWorkerLooksMissing(t *testing.T) {
	// Слот принадлежит мастеру 5, запрос адресован мастеру 1
	worker5 := testUsers()
	worker5.users[5] = &userservice.User{ID: 5, Role: domain.RoleWorker, DisplayName: "Другой мастер"}

	slots := newFakeSlotRepo(availableSlot(10, 5))
	uc := NewUseCase(slots, &fakeAppointmentRepo{}, worker5, fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ClientID: 2, WorkerID: 1, SlotID: 10})
	assert.ErrorIs(t, err, ErrSlotNotFound)

	// Чужой слот не тронут
	s, getErr := slots.GetByID(context.Background(), 10)
	require.NoError(t, getErr)
	assert.Equal(t, domain.SlotAvailable, s.Status)
}

func TestExecute_AcceptedSlotUnavailable(t *testing.T) {
	taken := availableSlot(10, 1)
	taken.Status = domain.SlotAccepted

	slots := newFakeSlotRepo(taken)
	uc := NewUseCase(slots, &fakeAppointmentRepo{}, testUsers(), fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ClientID: 2, WorkerID: 1, SlotID: 10})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_ConcurrentBookingsAtMostOneWins(t *testing.T) {
	slots := newFakeSlotRepo(availableSlot(10, 1))
	appointments := &fakeAppointmentRepo{}
	uc := NewUseCase(slots, appointments, testUsers(), fakeTxManager{}, noopLogger{})

	const attempts = 16
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		clientID := int64(2)
		if i%2 == 1 {
			clientID = 3
		}

		wg.Add(1)
		go func(clientID int64) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), &Request{
				ClientID: clientID,
				WorkerID: 1,
				SlotID:   10,
			})
			results <- err
		}(clientID)
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		switch {
		case err == nil:
			wins++
		default:
			require.ErrorIs(t, err, ErrSlotUnavailable)
			losses++
		}
	}

	// Ровно один запрос выигрывает гонку, остальные получают честный отказ
	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, losses)
	assert.Len(t, appointments.appointments, 1)
}
