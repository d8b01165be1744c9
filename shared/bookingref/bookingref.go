// Package bookingref formats and decodes human-readable booking references.
//
// Canonical references look like LUX-STD-2405-007: accommodation type code,
// package code, two digit year and month, and the monthly sequence of the
// accommodation. Provisional references, assigned while a booking waits in the
// offline queue, look like OFF-202405-482.
package bookingref

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultAccommodationCode = "GEN"
	StandardPackageCode      = "STD"
	ProvisionalPrefix        = "OFF"

	codeLength = 3

	provisionalMin = 100
	provisionalMax = 999
)

var (
	ErrMalformed = errors.New("malformed booking reference")

	canonicalPattern   = regexp.MustCompile(`^([A-Z0-9_ ]{1,3})-([A-Z0-9_ ]{1,3})-(\d{2})(\d{2})-(\d{3,})$`)
	provisionalPattern = regexp.MustCompile(`^OFF-\d{6}-\d{3}$`)
)

// Parts are the decoded components of a canonical reference.
type Parts struct {
	AccommodationCode string
	PackageCode       string
	Year              int // two digits
	Month             int
	Sequence          int
}

func (p Parts) String() string {
	return fmt.Sprintf("%s%03d", p.Prefix(), p.Sequence)
}

// Prefix is everything before the sequence, shared by all references of the same
// accommodation code, package code and month.
func (p Parts) Prefix() string {
	return fmt.Sprintf("%s-%s-%02d%02d-", p.AccommodationCode, p.PackageCode, p.Year%100, p.Month)
}

// LastSequence returns the highest sequence among references that carry prefix.
// References with another prefix or a non numeric sequence are ignored.
func LastSequence(prefix string, references []string) int {
	last := 0

	for _, reference := range references {
		suffix, found := strings.CutPrefix(reference, prefix)
		if !found {
			continue
		}

		sequence, err := strconv.Atoi(suffix)
		if err != nil || sequence < 0 {
			continue
		}

		last = max(last, sequence)
	}

	return last
}

// Code upper-cases the first three characters of value, returning fallback when value is blank.
func Code(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}

	runes := []rune(strings.ToUpper(value))
	if len(runes) > codeLength {
		runes = runes[:codeLength]
	}

	return string(runes)
}

// New builds the canonical parts for the booking that follows count existing
// bookings of the month containing now.
func New(accommodationType, packageCode string, now time.Time, count int) Parts {
	return Parts{
		AccommodationCode: Code(accommodationType, DefaultAccommodationCode),
		PackageCode:       Code(packageCode, StandardPackageCode),
		Year:              now.Year() % 100,
		Month:             int(now.Month()),
		Sequence:          count + 1,
	}
}

// MonthRange returns the first and last instant of the calendar month containing now,
// both inclusive, in the location of now.
func MonthRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Microsecond)

	return start, end
}

func Parse(reference string) (Parts, error) {
	match := canonicalPattern.FindStringSubmatch(reference)
	if match == nil {
		return Parts{}, fmt.Errorf("%w: %q", ErrMalformed, reference)
	}

	year, _ := strconv.Atoi(match[3])
	month, _ := strconv.Atoi(match[4])
	sequence, _ := strconv.Atoi(match[5])

	if month < 1 || month > 12 || sequence < 1 {
		return Parts{}, fmt.Errorf("%w: %q", ErrMalformed, reference)
	}

	return Parts{
		AccommodationCode: match[1],
		PackageCode:       match[2],
		Year:              year,
		Month:             month,
		Sequence:          sequence,
	}, nil
}

// Random is satisfied by *math/rand/v2.Rand.
type Random interface {
	IntN(n int) int
}

// Provisional returns a reference for a booking that has not reached the server yet.
func Provisional(now time.Time, rnd Random) string {
	suffix := provisionalMin + rnd.IntN(provisionalMax-provisionalMin+1)

	return fmt.Sprintf("%s-%04d%02d-%03d", ProvisionalPrefix, now.Year(), int(now.Month()), suffix)
}

func IsProvisional(reference string) bool {
	return provisionalPattern.MatchString(reference)
}
