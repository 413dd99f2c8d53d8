package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidTime = errors.New("invalid swim time")

// Digit bounds keep the hundredths total far from int overflow.
const (
	maxMinuteDigits = 4
	maxSecondDigits = 6
)

// ParseSwimTime converts "ss", "ss.h", "ss.hh", "m:ss.hh" or "mm:ss.hh" into
// hundredths of a second. With a minutes part, seconds must be below 60 and
// minutes at most four digits.
func ParseSwimTime(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidTime)
	}

	minutes := 0
	secPart := s
	i := strings.IndexByte(s, ':')
	if i >= 0 {
		if i > maxMinuteDigits {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		m, err := parseDigits(s[:i])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		minutes = m
		secPart = s[i+1:]
	}

	wholePart, fracPart, hasFrac := strings.Cut(secPart, ".")
	if len(wholePart) > maxSecondDigits {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	seconds, err := parseDigits(wholePart)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	if i >= 0 {
		if len(wholePart) != 2 || seconds >= 60 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
	}

	hundredths := 0
	if hasFrac {
		if len(fracPart) == 0 || len(fracPart) > 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		h, err := parseDigits(fracPart)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		if len(fracPart) == 1 {
			h *= 10
		}
		hundredths = h
	}

	return (minutes*60+seconds)*100 + hundredths, nil
}

// FormatSwimTime renders hundredths as "ss.hh" under a minute and
// "m:ss.hh" otherwise. Negative values render as "--".
func FormatSwimTime(hundredths int) string {
	if hundredths < 0 {
		return "--"
	}
	minutes := hundredths / 6000
	seconds := (hundredths % 6000) / 100
	frac := hundredths % 100
	if minutes == 0 {
		return fmt.Sprintf("%d.%02d", seconds, frac)
	}
	return fmt.Sprintf("%d:%02d.%02d", minutes, seconds, frac)
}

func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit %q", r)
		}
	}
	return strconv.Atoi(s)
}
