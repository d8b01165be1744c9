// Package timezone pins every timestamp the service writes or renders to APP_TIMEZONE.
// Use IANA names such as "Asia/Makassar"; unknown names fall back to UTC.
package timezone

import (
	"resort/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	location *time.Location
	loadOnce sync.Once
	mu       sync.RWMutex
)

func current() *time.Location {
	loadOnce.Do(func() {
		name := config.Get().App.Timezone
		if name == "" {
			name = "UTC"
		}

		if err := SetLocation(name); err != nil {
			log.Error().Err(err).Str("timezone", name).Msg("unknown timezone, using UTC")
		}
	})

	mu.RLock()
	defer mu.RUnlock()

	if location == nil {
		return time.UTC
	}

	return location
}

// SetLocation replaces the application timezone. On error the previous one, or UTC, stays.
func SetLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}

	mu.Lock()
	location = loc
	mu.Unlock()

	return nil
}

func Now() time.Time {
	return time.Now().In(current())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(current())
}

func GetLocation() *time.Location {
	return current()
}

// Parse reads value as a wall clock time in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, current())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
