package submit_availability

import "errors"

var (
	// ErrValidation возвращается при некорректной неделе: неизвестный день,
	// метка не в формате HH:MM или дубликат метки внутри одного дня
	// Невалидная неделя отклоняется целиком, ни один день не применяется
	ErrValidation = errors.New("submit_availability: invalid week submission")

	// ErrWorkerNotFound возвращается, когда мастер не найден
	ErrWorkerNotFound = errors.New("submit_availability: worker not found")

	// ErrNotWorker возвращается, когда пользователь не является мастером
	ErrNotWorker = errors.New("submit_availability: user is not a worker")

	// ErrReconcile возвращается при ошибке персистентности в середине недели
	// Изменения уже примененных дней не откатываются: вызывающий должен
	// перечитать состояние и повторить отправку
	ErrReconcile = errors.New("submit_availability: reconciliation failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_availability: internal error")
)
