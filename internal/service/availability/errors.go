package availability

import "errors"

var (
	// ErrWorkerNotFound возвращается, когда мастер не найден
	// Пустая неделя ошибкой не является: мастер без слотов - валидный ответ
	ErrWorkerNotFound = errors.New("worker not found")

	// ErrNotWorker возвращается, когда пользователь не является мастером
	ErrNotWorker = errors.New("user is not a worker")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability service: internal error")
)
