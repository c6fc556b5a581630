package draftboard

// Day корзина доски черновика: семь дней недели плюс синтетическая done
// Done существует только на клиенте и никогда не попадает в отправку
type Day string

const (
	DayMonday    Day = "monday"
	DayTuesday   Day = "tuesday"
	DayWednesday Day = "wednesday"
	DayThursday  Day = "thursday"
	DayFriday    Day = "friday"
	DaySaturday  Day = "saturday"
	DaySunday    Day = "sunday"
	DayDone      Day = "done"
)

// WeekDays реальные дни недели в фиксированном порядке (без done)
var WeekDays = []Day{
	DayMonday,
	DayTuesday,
	DayWednesday,
	DayThursday,
	DayFriday,
	DaySaturday,
	DaySunday,
}

// boardDays все корзины доски, включая done
var boardDays = append(append([]Day{}, WeekDays...), DayDone)

// IsReal возвращает true для настоящих дней недели (корзина done не считается)
func (d Day) IsReal() bool {
	switch d {
	case DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday:
		return true
	default:
		return false
	}
}
