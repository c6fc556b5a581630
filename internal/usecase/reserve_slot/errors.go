package reserve_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_slot: invalid input data")

	// ErrSelfBooking возвращается при попытке мастера записаться к самому себе
	ErrSelfBooking = errors.New("reserve_slot: self booking rejected")

	// ErrWorkerNotFound возвращается, когда мастер не найден или пользователь не мастер
	ErrWorkerNotFound = errors.New("reserve_slot: worker not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("reserve_slot: client not found")

	// ErrSlotNotFound возвращается, когда слот не существует или принадлежит другому мастеру
	ErrSlotNotFound = errors.New("reserve_slot: slot not found")

	// ErrSlotUnavailable возвращается, когда слот уже занят
	// Ошибка всегда доводится до клиента как есть: молчаливый повтор
	// с другим слотом забронировал бы не то, что выбрал пользователь
	ErrSlotUnavailable = errors.New("reserve_slot: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_slot: internal error")
)
