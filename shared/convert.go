package shared

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ConvertStringToBool returns nil for blank or unparsable input so optional form and
// query flags stay unset.
func ConvertStringToBool(value string) *bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	flag, err := strconv.ParseBool(value)
	if err != nil {
		log.Warn().Err(err).Str("value", value).Msg("ignoring malformed boolean")

		return nil
	}

	return &flag
}

func ConvertStringToInt(value string) (int, error) {
	res, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("failed to convert %q to int: %w", value, err)
	}

	return res, nil
}

// ConvertStringToFloat parses decimal form values such as prices.
func ConvertStringToFloat(value string) (float64, error) {
	res, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to convert %q to float: %w", value, err)
	}

	return res, nil
}
