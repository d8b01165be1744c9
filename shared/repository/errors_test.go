package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"resort/shared/repository"
)

func TestIsUniqueViolation(t *testing.T) {
	violation := &pq.Error{Code: "23505", Constraint: "bookings_booking_reference_key"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "matching constraint", err: violation, constraint: "bookings_booking_reference_key", want: true},
		{name: "wrapped error", err: fmt.Errorf("insert: %w", violation), constraint: "bookings_booking_reference_key", want: true},
		{name: "any constraint", err: violation, want: true},
		{name: "other constraint", err: violation, constraint: "bookings_offline_id_key", want: false},
		{name: "other code", err: &pq.Error{Code: "23503"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repository.IsUniqueViolation(tt.err, tt.constraint))
		})
	}
}
