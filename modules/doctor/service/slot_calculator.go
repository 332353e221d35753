package service

import (
	"fmt"
	"time"

	"clinic-appointment-api/core/constants"
)

// ComputeAvailableSlots walks the window [workStart, workEnd) on the given day
// in steps of slotMinutes and returns the start times ("HH:MM", ascending) not
// taken by a booked appointment. Matching is at minute granularity: a booking
// at 09:00:30 still occupies the 09:00 slot. A slot is emitted whenever its
// start falls before workEnd, even when the slot itself would overrun the
// window. Pure function, no I/O.
func ComputeAvailableSlots(workStart, workEnd string, day time.Time, booked []time.Time, slotMinutes int) ([]string, error) {
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("slot duration must be positive, got %d", slotMinutes)
	}

	start, err := atTimeOfDay(day, workStart)
	if err != nil {
		return nil, err
	}
	end, err := atTimeOfDay(day, workEnd)
	if err != nil {
		return nil, err
	}

	bookedMinutes := make(map[int64]struct{}, len(booked))
	for _, b := range booked {
		bookedMinutes[b.Truncate(time.Minute).Unix()] = struct{}{}
	}

	slots := []string{}
	step := time.Duration(slotMinutes) * time.Minute
	for cur := start; cur.Before(end); cur = cur.Add(step) {
		if _, taken := bookedMinutes[cur.Unix()]; taken {
			continue
		}
		slots = append(slots, cur.Format(constants.TimeOfDayLayout))
	}
	return slots, nil
}

// atTimeOfDay anchors an "HH:MM" time-of-day onto the calendar day of day.
func atTimeOfDay(day time.Time, hhmm string) (time.Time, error) {
	tod, err := time.Parse(constants.TimeOfDayLayout, hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", hhmm, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, day.Location()), nil
}
