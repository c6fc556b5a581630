package draftboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/premoprojekt2024TM/Barber-sub000/pkg/types"
)

// State состояние доски
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateEditing
	StateSubmitting
	StateError
)

// String возвращает имя состояния
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Task задача черновика: одна метка времени в корзине дня
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"` // метка HH:MM
	Order int    `json:"order"`

	// OriginalDay день, в котором слот был принят; заполняется только
	// для задач в корзине done
	OriginalDay Day `json:"originalDay,omitempty"`

	// SlotID серверный ID слота; 0 для еще не сохраненных задач
	SlotID int64 `json:"slotId,omitempty"`
}

// Board доска черновика недели мастера
// Явный объект состояния: создается на аутентифицированную сессию
// и разрушается при выходе, никакого глобального синглтона
// Все мутации - локальные синхронные переходы, сервер остается
// источником истины: черновик замещается целиком при каждой успешной
// загрузке или отправке
type Board struct {
	mu sync.Mutex

	state   State
	buckets map[Day][]Task
	lastErr error

	// submitting не снимается до завершения сетевого вызова:
	// вторая отправка поверх первой отклоняется
	submitting bool

	client AvailabilityClient
}

// New создает пустую доску для сессии
func New(client AvailabilityClient) *Board {
	return &Board{
		state:   StateIdle,
		buckets: emptyBuckets(),
		client:  client,
	}
}

func emptyBuckets() map[Day][]Task {
	buckets := make(map[Day][]Task, len(boardDays))
	for _, d := range boardDays {
		buckets[d] = []Task{}
	}
	return buckets
}

// State возвращает текущее состояние доски
func (b *Board) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Err возвращает последнюю ошибку загрузки или отправки
func (b *Board) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErr
}

// Tasks возвращает копию корзины дня
func (b *Board) Tasks(day Day) []Task {
	b.mu.Lock()
	defer b.mu.Unlock()

	tasks := make([]Task, len(b.buckets[day]))
	copy(tasks, b.buckets[day])
	return tasks
}

// Load загружает текущую доступность с сервера и замещает черновик целиком
// При ошибке предыдущий черновик остается нетронутым: никакой частичной перезаписи
func (b *Board) Load(ctx context.Context) error {
	b.mu.Lock()
	b.state = StateLoading
	b.mu.Unlock()

	slots, err := b.client.FetchWeek(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.state = StateError
		b.lastErr = fmt.Errorf("%w: %v", ErrFetch, err)
		return b.lastErr
	}

	// Замещение целиком: принятые слоты уходят в done с пометкой
	// исходного дня и исключаются из целей переноса и из отправки
	buckets := emptyBuckets()
	for _, s := range slots {
		day := Day(s.Day)
		if !day.IsReal() {
			continue
		}

		task := Task{
			ID:     uuid.New().String(),
			Title:  s.Label,
			SlotID: s.ID,
		}

		if s.Status == "accepted" {
			task.OriginalDay = day
			task.Order = len(buckets[DayDone])
			buckets[DayDone] = append(buckets[DayDone], task)
			continue
		}

		task.Order = len(buckets[day])
		buckets[day] = append(buckets[day], task)
	}

	b.buckets = buckets
	b.state = StateReady
	b.lastErr = nil
	return nil
}

// AddSlot добавляет метку в корзину дня
// Невалидная метка отклоняется без мутации; совпадающая метка в том же дне
// возвращает мягкое предупреждение ErrDuplicateLabel без обращения к серверу
func (b *Board) AddSlot(day Day, label string) error {
	if !day.IsReal() {
		return ErrLocked
	}

	if err := validateLabel(label); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, t := range b.buckets[day] {
		if t.Title == label {
			return ErrDuplicateLabel
		}
	}

	b.buckets[day] = append(b.buckets[day], Task{
		ID:    uuid.New().String(),
		Title: label,
		Order: len(b.buckets[day]),
	})
	b.state = StateEditing

	return nil
}

// RemoveSlot удаляет задачу из корзины дня
// Локальная операция, сервер узнает об удалении только при отправке недели
func (b *Board) RemoveSlot(day Day, id string) error {
	if day == DayDone {
		return ErrLocked
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	bucket := b.buckets[day]
	for i, t := range bucket {
		if t.ID == id {
			b.buckets[day] = append(bucket[:i:i], bucket[i+1:]...)
			reorder(b.buckets[day])
			b.state = StateEditing
			return nil
		}
	}

	return ErrTaskNotFound
}

// RenameSlot меняет метку задачи с той же валидацией HH:MM
// Задачи в done переименовывать нельзя - принятые слоты заблокированы
func (b *Board) RenameSlot(id string, newLabel string) error {
	if err := validateLabel(newLabel); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, t := range b.buckets[DayDone] {
		if t.ID == id {
			return ErrLocked
		}
	}

	for _, day := range WeekDays {
		bucket := b.buckets[day]
		for i, t := range bucket {
			if t.ID != id {
				continue
			}

			for j, other := range bucket {
				if j != i && other.Title == newLabel {
					return ErrDuplicateLabel
				}
			}

			bucket[i].Title = newLabel
			b.state = StateEditing
			return nil
		}
	}

	return ErrTaskNotFound
}

// MoveSlot реализует контракт drag-and-drop: вынимает задачу из fromDay
// и вставляет в toDay по индексу toIndex
// Перенос в done или из done - тихий no-op: done пополняется только
// сервером при подтвержденном бронировании, принятые слоты заблокированы
// Индекс за границами целевой корзины - тоже тихий no-op, не падение
func (b *Board) MoveSlot(id string, fromDay, toDay Day, toIndex int) error {
	if fromDay == DayDone || toDay == DayDone {
		return nil
	}
	if !fromDay.IsReal() || !toDay.IsReal() {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	from := b.buckets[fromDay]
	taskIdx := -1
	for i, t := range from {
		if t.ID == id {
			taskIdx = i
			break
		}
	}
	if taskIdx == -1 {
		return ErrTaskNotFound
	}

	task := from[taskIdx]
	withoutTask := append(from[:taskIdx:taskIdx], from[taskIdx+1:]...)

	target := withoutTask
	if fromDay != toDay {
		target = b.buckets[toDay]
	}

	if toIndex < 0 || toIndex > len(target) {
		return nil
	}

	spliced := make([]Task, 0, len(target)+1)
	spliced = append(spliced, target[:toIndex]...)
	spliced = append(spliced, task)
	spliced = append(spliced, target[toIndex:]...)

	b.buckets[fromDay] = withoutTask
	b.buckets[toDay] = spliced
	reorder(b.buckets[fromDay])
	reorder(b.buckets[toDay])
	b.state = StateEditing

	return nil
}

// Payload сериализует семь реальных дней в форму отправки {day: [label...]}
// Корзина done не попадает в отправку
func (b *Board) Payload() map[string][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.payloadLocked()
}

func (b *Board) payloadLocked() map[string][]string {
	week := make(map[string][]string, len(WeekDays))
	for _, day := range WeekDays {
		labels := make([]string, 0, len(b.buckets[day]))
		for _, t := range b.buckets[day] {
			labels = append(labels, t.Title)
		}
		week[string(day)] = labels
	}
	return week
}

// Submit отправляет всю неделю на сервер
// Не реентерабелен: вторая отправка во время первой получает ErrSubmitInFlight
// Локальные правки во время отправки разрешены - снапшот недели снимается
// в момент вызова
// При ошибке черновик остается нетронутым, правки мастера не теряются
func (b *Board) Submit(ctx context.Context) error {
	b.mu.Lock()
	if b.submitting {
		b.mu.Unlock()
		return ErrSubmitInFlight
	}
	b.submitting = true
	b.state = StateSubmitting
	payload := b.payloadLocked()
	b.mu.Unlock()

	err := b.client.SubmitWeek(ctx, payload)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.submitting = false

	if err != nil {
		b.state = StateError
		b.lastErr = fmt.Errorf("%w: %v", ErrSubmit, err)
		return b.lastErr
	}

	b.state = StateReady
	b.lastErr = nil
	return nil
}

// validateLabel проверяет формат метки HH:MM
func validateLabel(label string) error {
	if _, err := types.NewTimeStringFromString(label); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	return nil
}

// reorder восстанавливает поле Order после вставок и удалений
func reorder(bucket []Task) {
	for i := range bucket {
		bucket[i].Order = i
	}
}
