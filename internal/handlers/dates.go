package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dailywell/backend/internal/apierror"
	"github.com/dailywell/backend/internal/models"
	"github.com/dailywell/backend/internal/service"
)

// dateParser reads dates from query and path parameters in the
// configured timezone
type dateParser struct {
	opts service.Options
}

func newDateParser(opts service.Options) dateParser {
	return dateParser{opts: opts.WithDefaults()}
}

// parse accepts RFC 3339 timestamps and YYYY-MM-DD dates. A bare date
// is midnight, or the last instant of the day when endOfDay is set.
func (p dateParser) parse(value string, endOfDay bool) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(p.opts.Location), true
	}

	day, err := time.ParseInLocation(models.DateLayout, value, p.opts.Location)
	if err != nil {
		return time.Time{}, false
	}
	if endOfDay {
		return day.AddDate(0, 0, 1).Add(-time.Nanosecond), true
	}
	return day, true
}

// rangeQuery reads start_date and end_date, defaulting to the rolling
// window ending now. It writes a problem response and returns false on
// bad input.
func (p dateParser) rangeQuery(c *gin.Context) (start, end time.Time, ok bool) {
	end = p.opts.Current()
	start = end.AddDate(0, 0, -p.opts.WindowDays)

	if v := c.Query("start_date"); v != "" {
		if start, ok = p.parse(v, false); !ok {
			apierror.WriteProblem(c, apierror.NewInvalidDateError(apierror.GetRequestID(c), "start_date", v))
			return time.Time{}, time.Time{}, false
		}
	}
	if v := c.Query("end_date"); v != "" {
		if end, ok = p.parse(v, true); !ok {
			apierror.WriteProblem(c, apierror.NewInvalidDateError(apierror.GetRequestID(c), "end_date", v))
			return time.Time{}, time.Time{}, false
		}
	}
	return start, end, true
}

// dayParam reads a YYYY-MM-DD path parameter
func (p dateParser) dayParam(c *gin.Context, name string) (time.Time, bool) {
	v := c.Param(name)
	day, err := time.ParseInLocation(models.DateLayout, v, p.opts.Location)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidDateError(apierror.GetRequestID(c), name, v))
		return time.Time{}, false
	}
	return day, true
}
