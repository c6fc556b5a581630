package domain

import "fmt"

// Weekday represents a day of the fixed 7-day availability week
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays все дни недели в фиксированном порядке
// Используется для детерминированного обхода недели при реконсиляции
var Weekdays = []Weekday{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// IsValid returns true if the weekday is one of the seven known days
func (d Weekday) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	default:
		return false
	}
}

// String returns the lowercase day name
func (d Weekday) String() string {
	return string(d)
}

// ParseWeekday преобразует строку в Weekday
// Возвращает ошибку для неизвестного дня - неизвестный ключ дня не должен дойти до хранилища
func ParseWeekday(s string) (Weekday, error) {
	d := Weekday(s)
	if !d.IsValid() {
		return "", fmt.Errorf("unknown weekday %q", s)
	}
	return d, nil
}
