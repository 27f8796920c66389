package domain

import (
	"errors"
	"time"
)

// ErrInvalidRange возвращается при попытке создать диапазон с end <= start
var ErrInvalidRange = errors.New("domain: check-out date must be after check-in date")

// DateRange полуоткрытый интервал проживания [check-in, check-out)
// День выезда не входит в интервал: выезд и заезд в один день не пересекаются,
// что разрешает same-day turnover
// Значение неизменяемо после создания
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange создает диапазон дат, нормализуя обе даты до полуночи UTC
func NewDateRange(start, end time.Time) (DateRange, error) {
	s := truncateToDay(start)
	e := truncateToDay(end)
	if !e.After(s) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{start: s, end: e}, nil
}

// Start дата заезда
func (r DateRange) Start() time.Time {
	return r.start
}

// End дата выезда (не входит в интервал)
func (r DateRange) End() time.Time {
	return r.end
}

// Nights количество ночей проживания (end - start в целых днях)
func (r DateRange) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

// Overlaps возвращает true, если интервалы действительно пересекаются
// Полуоткрытая семантика: границы не считаются пересечением
// [d1, d2) и [d2, d3) не пересекаются для любых d1 < d2 < d3
func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

// IsZero возвращает true для нулевого диапазона (не созданного через NewDateRange)
func (r DateRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// EachNight вызывает fn для каждой ночи проживания (дата заезда каждой ночи)
func (r DateRange) EachNight(fn func(night time.Time)) {
	for d := r.start; d.Before(r.end); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// NightWeekdays возвращает множество дней недели, в которые приходятся ночи проживания
func (r DateRange) NightWeekdays() map[time.Weekday]bool {
	weekdays := make(map[time.Weekday]bool)
	r.EachNight(func(night time.Time) {
		weekdays[night.Weekday()] = true
	})
	return weekdays
}

// truncateToDay обнуляет время, оставляя только календарную дату в UTC
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
