package builders_test

import (
	"testing"
	"time"

	"ktv/builders"
	"ktv/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingBuilder(t *testing.T) {
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	booking := builders.NewBookingBuilder().
		WithCustomer(7).
		WithGroup(3).
		WithTimeRange(start, end).
		WithRoom(1, start, end, 100000).
		WithRoom(2, start, end, 150000).
		WithTotalAmount(500000).
		WithNotes("Sinh nhật").
		Build()

	assert.Equal(t, uint(7), booking.CustomerID)
	require.NotNil(t, booking.BookingGroupID)
	assert.Equal(t, uint(3), *booking.BookingGroupID)
	assert.Equal(t, constants.BookingStatusPending, booking.Status)
	assert.Equal(t, start, booking.StartTime)
	assert.Equal(t, end, booking.EndTime)
	assert.Equal(t, float64(500000), booking.TotalAmount)
	require.Len(t, booking.Rooms, 2)
	assert.Equal(t, constants.PaymentStatusUnpaid, booking.Rooms[0].PaymentStatus)
}

func TestBookingBuilderDefaults(t *testing.T) {
	booking := builders.NewBookingBuilder().Build()
	assert.Equal(t, constants.BookingStatusPending, booking.Status)
	assert.Empty(t, booking.Rooms)
}
