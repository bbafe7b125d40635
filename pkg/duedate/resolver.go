package duedate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Resolver turns user-supplied due dates into absolute times in a fixed timezone.
// Accepted inputs are RFC3339 timestamps, YYYY-MM-DD dates and the relative
// phrases "today", "tomorrow", "yesterday", "in N days|weeks|months" and
// "next <weekday>". Date-only and relative inputs resolve to the end of that day.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone, e.g. "Europe/Madrid".
func NewResolver(timezone string) (*Resolver, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Location returns the resolver's timezone.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Resolve converts input to an absolute time relative to now.
func (r *Resolver) Resolve(input string, now time.Time) (time.Time, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return time.Time{}, ErrEmpty
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DateLayout, raw, r.location); err == nil {
		return r.EndOfDay(t), nil
	}

	relative := strings.ToLower(raw)
	switch relative {
	case "today":
		return r.EndOfDay(r.StartOfDay(now)), nil
	case "tomorrow":
		return r.EndOfDay(r.StartOfDay(now.AddDate(0, 0, 1))), nil
	case "yesterday":
		return r.EndOfDay(r.StartOfDay(now.AddDate(0, 0, -1))), nil
	}

	if strings.HasPrefix(relative, "in ") {
		t, err := r.parseInDuration(relative, now)
		if err != nil {
			return time.Time{}, err
		}
		return r.EndOfDay(t), nil
	}

	if strings.HasPrefix(relative, "next ") {
		t, err := r.parseNextWeekday(relative, now)
		if err != nil {
			return time.Time{}, err
		}
		return r.EndOfDay(t), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, raw)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (r *Resolver) parseInDuration(relative string, now time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration format %q", ErrUnrecognized, relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrUnrecognized, err)
	}

	unit := matches[2]
	switch {
	case strings.HasPrefix(unit, "day"):
		return r.StartOfDay(now.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return r.StartOfDay(now.AddDate(0, 0, amount*7)), nil
	default:
		return r.StartOfDay(now.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday". The same weekday as
// today resolves one week ahead.
func (r *Resolver) parseNextWeekday(relative string, now time.Time) (time.Time, error) {
	dayName := strings.TrimSpace(strings.TrimPrefix(relative, "next "))
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, dayName)
	}

	local := now.In(r.location)
	daysUntil := int(target - local.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return r.StartOfDay(local.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the resolver's timezone.
func (r *Resolver) StartOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// EndOfDay returns 23:59:59 at the end of the day containing t.
func (r *Resolver) EndOfDay(t time.Time) time.Time {
	return r.StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
