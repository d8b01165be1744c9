package dto

import (
	"errors"
	"fmt"
	"resort/shared/constant"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidStay = errors.New("check_out_date must be after check_in_date")
)

// ParseStay parses YYYY-MM-DD dates and rejects stays shorter than one night.
func ParseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(constant.DateOnlyFormat, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check_in_date %q", ErrInvalidDate, checkIn)
	}

	out, err := time.Parse(constant.DateOnlyFormat, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check_out_date %q", ErrInvalidDate, checkOut)
	}

	if !out.After(in) {
		return time.Time{}, time.Time{}, ErrInvalidStay
	}

	return in, out, nil
}
