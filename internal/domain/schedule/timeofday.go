package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay é um horário do dia em minutos desde a meia-noite (0–1439).
type TimeOfDay int

const MinutesPerDay = 24 * 60

// ParseTimeOfDay converte "HH:MM" (ex.: "08:30") em TimeOfDay.
func ParseTimeOfDay(hm string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("horário inválido %q: %w", hm, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String formata como "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// At materializa o horário no dia informado, preservando a location.
func (t TimeOfDay) At(day time.Time) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	)
}

// WeekdayOf converte para o weekday canônico interno: 0 = segunda-feira.
// (time.Weekday usa 0 = domingo.)
func WeekdayOf(day time.Time) int {
	return (int(day.Weekday()) + 6) % 7
}
