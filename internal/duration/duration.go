// Package duration converts the free-text travel times shown by the
// directions UI ("47m", "1h 12m", "1 h 12 m") into whole minutes.
package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrUnparseable is returned when the text matches neither the hour nor the
// minute pattern
var ErrUnparseable = errors.New("unparseable duration")

var (
	// one digit 1-9 before "h"; the UI sometimes puts a space before the
	// unit letter, sometimes not
	hourRe = regexp.MustCompile(`([1-9])\s*h`)
	// one or two digits before "m"
	minuteRe = regexp.MustCompile(`([0-9]{1,2})\s*m`)
)

// Parse returns the duration in minutes. Hours are converted and summed with
// the minute component; a missing component counts as zero. If neither
// pattern matches, Parse fails with ErrUnparseable rather than reporting a
// zero-minute trip.
func Parse(text string) (int, error) {
	hm := hourRe.FindStringSubmatch(text)
	mm := minuteRe.FindStringSubmatch(text)
	if hm == nil && mm == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparseable, text)
	}

	minutes := 0
	if hm != nil {
		h, _ := strconv.Atoi(hm[1])
		minutes += h * 60
	}
	if mm != nil {
		m, _ := strconv.Atoi(mm[1])
		minutes += m
	}
	return minutes, nil
}
