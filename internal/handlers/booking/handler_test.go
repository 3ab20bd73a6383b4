package booking

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apelcal/internal/domains/booking/model"
	"apelcal/shared/constant"
	gDto "apelcal/shared/dto"
	"apelcal/shared/timezone"
)

func TestBookingFilter(t *testing.T) {
	t.Run("no query params yields an empty filter group", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/v1/bookings", nil)

		filterGroup := bookingFilter(request)

		assert.Equal(t, gDto.FilterGroupOperatorAnd, filterGroup.Operator)
		assert.Empty(t, filterGroup.Filters)
	})

	t.Run("event type, status and date map to equality filters", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/v1/bookings?event_type_id=abc&status=confirmed&date=2030-01-07", nil)

		filterGroup := bookingFilter(request)

		require.Len(t, filterGroup.Filters, 3)
		assert.Contains(t, filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEventTypeID,
			Operator: gDto.FilterOperatorEq,
			Value:    "abc",
			Table:    model.TableName,
		})
		assert.Contains(t, filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    "confirmed",
			Table:    model.TableName,
		})
		assert.Contains(t, filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorEq,
			Value:    "2030-01-07",
			Table:    model.TableName,
		})
	})

	t.Run("upcoming=true keeps bookings from today onwards", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/v1/bookings?upcoming=true", nil)

		filterGroup := bookingFilter(request)

		require.Len(t, filterGroup.Filters, 1)
		assert.Equal(t, gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    timezone.Today().Format(constant.CalendarDateFormat),
			Table:    model.TableName,
		}, filterGroup.Filters[0])
	})

	t.Run("upcoming=false adds no filter", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/v1/bookings?upcoming=false", nil)

		filterGroup := bookingFilter(request)

		assert.Empty(t, filterGroup.Filters)
	})
}
