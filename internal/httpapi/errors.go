package httpapi

import (
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/golunar/lunardate/calendar"
)

// errMalformed marks request path or query values that could not be parsed.
var errMalformed = errors.New("malformed request")

// classify maps an error to its HTTP status and a short label used in
// metrics.
func classify(err error) (int, string) {
	switch {
	case calendar.IsTableCorruption(err):
		return http.StatusInternalServerError, "table_corruption"
	case errors.Is(err, calendar.ErrUnknownVariant):
		return http.StatusNotFound, "unknown_calendar"
	case errors.Is(err, calendar.ErrOutOfRange):
		return http.StatusUnprocessableEntity, "out_of_range"
	case errors.Is(err, calendar.ErrInvalidMonth):
		return http.StatusBadRequest, "invalid_month"
	case errors.Is(err, calendar.ErrInvalidDay):
		return http.StatusBadRequest, "invalid_day"
	case errors.Is(err, calendar.ErrLeapMonthNotPresent):
		return http.StatusBadRequest, "leap_month_not_present"
	case errors.Is(err, calendar.ErrInvalidSolarDate), errors.Is(err, errMalformed):
		return http.StatusBadRequest, "malformed"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
