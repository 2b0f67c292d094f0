package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidBirthInput is returned when birth details cannot be resolved to one UTC instant.
var ErrInvalidBirthInput = errors.New("invalid birth input")

// BirthInput holds the raw birth details a chart is computed from.
type BirthInput struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	Second    int     `json:"second"`
	UTCOffset float64 `json:"utc_offset"` // hours east of UTC, e.g. 5.5
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"` // east positive
}

// UTC resolves the local birth time to its UTC instant.
func (b BirthInput) UTC() time.Time {
	zone := time.FixedZone("", int(math.Round(b.UTCOffset*3600)))
	return time.Date(b.Year, time.Month(b.Month), b.Day, b.Hour, b.Minute, b.Second, 0, zone).UTC()
}

// ParseBirthInput builds a BirthInput from "2006-01-02", "15:04[:05]" and an offset such as
// "+05:30", "-4" or "5.5". Callers use it to reject malformed input before invoking the engine.
func ParseBirthInput(date, clock, offset string, lat, lon float64) (BirthInput, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return BirthInput{}, fmt.Errorf("%w: date %q: %v", ErrInvalidBirthInput, date, err)
	}
	clock = strings.TrimSpace(clock)
	layout := "15:04"
	if strings.Count(clock, ":") == 2 {
		layout = "15:04:05"
	}
	c, err := time.Parse(layout, clock)
	if err != nil {
		return BirthInput{}, fmt.Errorf("%w: time %q: %v", ErrInvalidBirthInput, clock, err)
	}
	off, err := ParseUTCOffset(offset)
	if err != nil {
		return BirthInput{}, err
	}
	if lat < -90 || lat > 90 {
		return BirthInput{}, fmt.Errorf("%w: latitude %.4f out of range", ErrInvalidBirthInput, lat)
	}
	if lon < -180 || lon > 180 {
		return BirthInput{}, fmt.Errorf("%w: longitude %.4f out of range", ErrInvalidBirthInput, lon)
	}
	return BirthInput{
		Year:      d.Year(),
		Month:     int(d.Month()),
		Day:       d.Day(),
		Hour:      c.Hour(),
		Minute:    c.Minute(),
		Second:    c.Second(),
		UTCOffset: off,
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

// ParseUTCOffset accepts "+05:30", "-04:00", "UTC+5:30", "5.5" or "-4" and returns hours.
func ParseUTCOffset(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "UTC"), "GMT")
	if s == "" || s == "Z" {
		return 0, nil
	}
	sign := 1.0
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign = -1
		s = s[1:]
	}
	var hours float64
	if h, m, ok := strings.Cut(s, ":"); ok {
		hi, err1 := strconv.Atoi(h)
		mi, err2 := strconv.Atoi(m)
		if err1 != nil || err2 != nil || mi < 0 || mi >= 60 {
			return 0, fmt.Errorf("%w: utc offset %q", ErrInvalidBirthInput, s)
		}
		hours = float64(hi) + float64(mi)/60
	} else {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: utc offset %q", ErrInvalidBirthInput, s)
		}
		hours = v
	}
	if hours > 14 {
		return 0, fmt.Errorf("%w: utc offset %q out of range", ErrInvalidBirthInput, s)
	}
	return sign * hours, nil
}
