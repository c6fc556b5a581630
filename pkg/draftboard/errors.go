package draftboard

import "errors"

var (
	// ErrInvalidLabel возвращается, когда метка не соответствует формату HH:MM
	// Ошибка привязана к полю ввода и блокирует только текущую операцию
	ErrInvalidLabel = errors.New("draftboard: label must match HH:MM")

	// ErrDuplicateLabel мягкое предупреждение: такая метка уже есть в этом дне
	// Это подсказка пользователю, а не жесткая ошибка, черновик не изменяется
	ErrDuplicateLabel = errors.New("draftboard: label already exists on this day")

	// ErrTaskNotFound возвращается, когда задача с указанным ID не найдена
	ErrTaskNotFound = errors.New("draftboard: task not found")

	// ErrLocked возвращается при попытке изменить принятый слот
	// Корзина done пополняется только подтвержденным бронированием на сервере
	ErrLocked = errors.New("draftboard: accepted slots are locked")

	// ErrFetch возвращается при ошибке загрузки недели с сервера
	// Предыдущий черновик остается нетронутым, операцию можно повторить
	ErrFetch = errors.New("draftboard: failed to fetch week")

	// ErrSubmit возвращается при ошибке отправки недели
	// Черновик сохраняется, правки не теряются, отправку можно повторить
	ErrSubmit = errors.New("draftboard: failed to submit week")

	// ErrSubmitInFlight возвращается при повторной отправке, пока первая не завершена
	// Две отправки не должны чередоваться: снапшоты недели ушли бы не по порядку
	ErrSubmitInFlight = errors.New("draftboard: submit already in flight")
)
