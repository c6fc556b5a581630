package draftboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient управляемая реализация AvailabilityClient для тестов
type fakeClient struct {
	mu sync.Mutex

	slots    []WeekSlot
	fetchErr error

	submitErr   error
	submitted   []map[string][]string
	submitGate  chan struct{} // если задан, SubmitWeek блокируется до закрытия
	submitCalls int
}

func (c *fakeClient) FetchWeek(ctx context.Context) ([]WeekSlot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fetchErr != nil {
		return nil, c.fetchErr
	}
	return c.slots, nil
}

func (c *fakeClient) SubmitWeek(ctx context.Context, week map[string][]string) error {
	c.mu.Lock()
	gate := c.submitGate
	c.submitCalls++
	c.mu.Unlock()

	if gate != nil {
		<-gate
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitErr != nil {
		return c.submitErr
	}
	c.submitted = append(c.submitted, week)
	return nil
}

func TestBoard_Load_GroupsAcceptedIntoDone(t *testing.T) {
	client := &fakeClient{
		slots: []WeekSlot{
			{ID: 1, Day: "monday", Label: "09:00", Status: "available"},
			{ID: 2, Day: "monday", Label: "10:00", Status: "accepted"},
			{ID: 3, Day: "friday", Label: "15:00", Status: "available"},
		},
	}
	board := New(client)

	require.NoError(t, board.Load(context.Background()))
	assert.Equal(t, StateReady, board.State())

	monday := board.Tasks(DayMonday)
	require.Len(t, monday, 1)
	assert.Equal(t, "09:00", monday[0].Title)

	done := board.Tasks(DayDone)
	require.Len(t, done, 1)
	assert.Equal(t, "10:00", done[0].Title)
	assert.Equal(t, DayMonday, done[0].OriginalDay)

	friday := board.Tasks(DayFriday)
	require.Len(t, friday, 1)
	assert.Equal(t, int64(3), friday[0].SlotID)
}

func TestBoard_Load_FailureKeepsDraft(t *testing.T) {
	client := &fakeClient{}
	board := New(client)

	require.NoError(t, board.AddSlot(DayMonday, "09:00"))

	client.mu.Lock()
	client.fetchErr = errors.New("network down")
	client.mu.Unlock()

	err := board.Load(context.Background())
	require.ErrorIs(t, err, ErrFetch)
	assert.Equal(t, StateError, board.State())

	// Черновик не перезаписан частично
	require.Len(t, board.Tasks(DayMonday), 1)
}

func TestBoard_Load_ReplacesDraftWholesale(t *testing.T) {
	client := &fakeClient{
		slots: []WeekSlot{{ID: 1, Day: "tuesday", Label: "11:00", Status: "available"}},
	}
	board := New(client)

	require.NoError(t, board.AddSlot(DayMonday, "09:00"))
	require.NoError(t, board.Load(context.Background()))

	assert.Empty(t, board.Tasks(DayMonday))
	require.Len(t, board.Tasks(DayTuesday), 1)
}

func TestBoard_AddSlot_RejectsInvalidLabel(t *testing.T) {
	board := New(&fakeClient{})

	for _, label := range []string{"9:00", "25:00", "12:60", "noon", ""} {
		err := board.AddSlot(DayMonday, label)
		assert.ErrorIs(t, err, ErrInvalidLabel, "label %q", label)
	}

	assert.Empty(t, board.Tasks(DayMonday))
}

func TestBoard_AddSlot_DuplicateIsSoftNotice(t *testing.T) {
	board := New(&fakeClient{})

	require.NoError(t, board.AddSlot(DayMonday, "09:00"))
	err := board.AddSlot(DayMonday, "09:00")
	assert.ErrorIs(t, err, ErrDuplicateLabel)

	// Корзина не изменилась
	assert.Len(t, board.Tasks(DayMonday), 1)

	// Та же метка в другом дне - не дубликат
	require.NoError(t, board.AddSlot(DayTuesday, "09:00"))
}

func TestBoard_RemoveSlot(t *testing.T) {
	board := New(&fakeClient{})

	require.NoError(t, board.AddSlot(DayMonday, "09:00"))
	require.NoError(t, board.AddSlot(DayMonday, "10:00"))

	tasks := board.Tasks(DayMonday)
	require.NoError(t, board.RemoveSlot(DayMonday, tasks[0].ID))

	remaining := board.Tasks(DayMonday)
	require.Len(t, remaining, 1)
	assert.Equal(t, "10:00", remaining[0].Title)
	assert.Equal(t, 0, remaining[0].Order)

	assert.ErrorIs(t, board.RemoveSlot(DayMonday, "missing"), ErrTaskNotFound)
	assert.ErrorIs(t, board.RemoveSlot(DayDone, "any"), ErrLocked)
}

func TestBoard_RenameSlot(t *testing.T) {
	board := New(&fakeClient{})

	require.NoError(t, board.AddSlot(DayMonday, "09:00"))
	require.NoError(t, board.AddSlot(DayMonday, "10:00"))
	tasks := board.Tasks(DayMonday)

	require.NoError(t, board.RenameSlot(tasks[0].ID, "09:30"))
	assert.Equal(t, "09:30", board.Tasks(DayMonday)[0].Title)

	// Переименование в метку соседа по корзине - дубликат
	assert.ErrorIs(t, board.RenameSlot(tasks[0].ID, "10:00"), ErrDuplicateLabel)

	// Невалидная метка отклоняется той же валидацией, что и добавление
	assert.ErrorIs(t, board.RenameSlot(tasks[0].ID, "9:30"), ErrInvalidLabel)
}

func TestBoard_RenameSlot_DoneIsLocked(t *testing.T) {
	client := &fakeClient{
		slots: []WeekSlot{{ID: 1, Day: "monday", Label: "10:00", Status: "accepted"}},
	}
	board := New(client)
	require.NoError(t, board.Load(context.Background()))

	done := board.Tasks(DayDone)
	require.Len(t, done, 1)
	assert.ErrorIs(t, board.RenameSlot(done[0].ID, "11:00"), ErrLocked)
}

func TestBoard_MoveSlot_BetweenDays(t *testing.T) {
	board := New(&fakeClient{})

	require.NoError(t, board.AddSlot(DayMonday, "09:00"))
	require.NoError(t, board.AddSlot(DayTuesday, "11:00"))
	task := board.Tasks(DayMonday)[0]

	require.NoError(t, board.MoveSlot(task.ID, DayMonday, DayTuesday, 0))

	assert.Empty(t, board.Tasks(DayMonday))
	tuesday := board.Tasks(DayTuesday)
	require.Len(t, tuesday, 2)
	assert.Equal(t, "09:00", tuesday[0].Title)
	assert.Equal(t, "11:00", tuesday[1].Title)
	assert.Equal(t, 0, tuesday[0].Order)
	assert.Equal(t, 1, tuesday[1].Order)
}

func TestBoard_MoveSlot_DoneIsNoOp(t *testing.T) {
	client := &fakeClient{
		slots: []WeekSlot{{ID: 1, Day: "monday", Label: "10:00", Status: "accepted"}},
	}
	board := New(client)
	require.NoError(t, board.Load(context.Background()))
	require.NoError(t, board.AddSlot(DayMonday, "09:00"))

	task := board.Tasks(DayMonday)[0]
	done := board.Tasks(DayDone)[0]

	// Перенос в done и из done - тихий no-op без ошибки
	require.NoError(t, board.MoveSlot(task.ID, DayMonday, DayDone, 0))
	require.NoError(t, board.MoveSlot(done.ID, DayDone, DayMonday, 0))

	assert.Len(t, board.Tasks(DayMonday), 1)
	assert.Len(t, board.Tasks(DayDone), 1)
}

func TestBoard_MoveSlot_OutOfRangeIndexIsNoOp(t *testing.T) {
	board := New(&fakeClient{})

	require.NoError(t, board.AddSlot(DayMonday, "09:00"))
	task := board.Tasks(DayMonday)[0]

	require.NoError(t, board.MoveSlot(task.ID, DayMonday, DayTuesday, 5))
	require.NoError(t, board.MoveSlot(task.ID, DayMonday, DayTuesday, -1))

	// Задача осталась на месте
	assert.Len(t, board.Tasks(DayMonday), 1)
	assert.Empty(t, board.Tasks(DayTuesday))
}

func TestBoard_Submit_PayloadExcludesDone(t *testing.T) {
	client := &fakeClient{
		slots: []WeekSlot{{ID: 1, Day: "wednesday", Label: "12:00", Status: "accepted"}},
	}
	board := New(client)
	require.NoError(t, board.Load(context.Background()))
	require.NoError(t, board.AddSlot(DayMonday, "09:00"))
	require.NoError(t, board.AddSlot(DayMonday, "10:00"))

	require.NoError(t, board.Submit(context.Background()))
	assert.Equal(t, StateReady, board.State())

	require.Len(t, client.submitted, 1)
	week := client.submitted[0]
	assert.Equal(t, []string{"09:00", "10:00"}, week["monday"])
	// Принятый слот среды не попадает в отправку
	assert.Empty(t, week["wednesday"])
	// Все семь дней присутствуют
	assert.Len(t, week, 7)
}

func TestBoard_Submit_FailureKeepsDraft(t *testing.T) {
	client := &fakeClient{submitErr: errors.New("server unavailable")}
	board := New(client)
	require.NoError(t, board.AddSlot(DayMonday, "09:00"))

	err := board.Submit(context.Background())
	require.ErrorIs(t, err, ErrSubmit)
	assert.Equal(t, StateError, board.State())
	assert.Len(t, board.Tasks(DayMonday), 1)

	// После исправления причина отправка проходит
	client.mu.Lock()
	client.submitErr = nil
	client.mu.Unlock()
	require.NoError(t, board.Submit(context.Background()))
}

func TestBoard_Submit_NotReentrant(t *testing.T) {
	gate := make(chan struct{})
	client := &fakeClient{submitGate: gate}
	board := New(client)
	require.NoError(t, board.AddSlot(DayMonday, "09:00"))

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- board.Submit(context.Background())
	}()

	// Ждем, пока первая отправка займет флаг
	for {
		client.mu.Lock()
		started := client.submitCalls > 0
		client.mu.Unlock()
		if started {
			break
		}
	}

	// Вторая отправка поверх первой отклоняется
	assert.ErrorIs(t, board.Submit(context.Background()), ErrSubmitInFlight)

	// Локальные правки во время отправки разрешены
	require.NoError(t, board.AddSlot(DayTuesday, "11:00"))

	close(gate)
	require.NoError(t, <-firstDone)

	// Снапшот снят в момент вызова: правка во время отправки не попала в неделю
	require.Len(t, client.submitted, 1)
	assert.Empty(t, client.submitted[0]["tuesday"])
}

func TestBoard_SnapshotRestore(t *testing.T) {
	board := New(&fakeClient{})
	require.NoError(t, board.AddSlot(DayMonday, "09:00"))
	require.NoError(t, board.AddSlot(DayFriday, "15:00"))

	snap := board.Snapshot()

	other := New(&fakeClient{})
	other.Restore(snap)

	require.Len(t, other.Tasks(DayMonday), 1)
	assert.Equal(t, "09:00", other.Tasks(DayMonday)[0].Title)
	require.Len(t, other.Tasks(DayFriday), 1)
	assert.Equal(t, StateReady, other.State())
}

func TestFileStore_SaveLoadDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	board := New(&fakeClient{})
	require.NoError(t, board.AddSlot(DayMonday, "09:00"))

	require.NoError(t, store.Save(42, board.Snapshot()))

	snap, err := store.Load(42)
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Len(t, snap.Buckets[DayMonday], 1)
	assert.Equal(t, "09:00", snap.Buckets[DayMonday][0].Title)

	// Отсутствующий черновик - не ошибка
	missing, err := store.Load(99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, store.Delete(42))
	deleted, err := store.Load(42)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}
