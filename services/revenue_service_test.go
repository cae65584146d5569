package services_test

import (
	"testing"
	"time"

	"ktv/constants"
	"ktv/models"
	"ktv/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPayment(t *testing.T, db *gorm.DB, amount float64, method string, date time.Time) {
	payment := models.Payment{
		CustomerID:    1,
		Amount:        amount,
		PaymentMethod: method,
		PaymentDate:   date,
	}
	require.NoError(t, db.Create(&payment).Error)
}

func TestRevenueOverviewBucketsByMonthAndQuarter(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewRevenueService(db)

	loc := time.UTC
	seedPayment(t, db, 200000, constants.PaymentMethodCash, time.Date(2030, 1, 15, 20, 0, 0, 0, loc))
	seedPayment(t, db, 300000, constants.PaymentMethodCard, time.Date(2030, 1, 20, 21, 0, 0, 0, loc))
	seedPayment(t, db, 500000, constants.PaymentMethodCash, time.Date(2030, 4, 5, 19, 0, 0, 0, loc))
	// Năm khác không được tính
	seedPayment(t, db, 999999, constants.PaymentMethodCash, time.Date(2029, 12, 31, 23, 0, 0, 0, loc))

	resp, err := svc.Overview(2030)
	require.NoError(t, err)

	assert.Equal(t, float64(1000000), resp.TotalRevenue)

	require.Len(t, resp.MonthlyRevenue, 12)
	assert.Equal(t, "Tháng 1", resp.MonthlyRevenue[0].Month)
	assert.Equal(t, float64(500000), resp.MonthlyRevenue[0].Revenue)
	assert.Equal(t, 2, resp.MonthlyRevenue[0].PaymentCount)
	assert.Equal(t, float64(500000), resp.MonthlyRevenue[3].Revenue)
	assert.Equal(t, float64(0), resp.MonthlyRevenue[7].Revenue)

	require.Len(t, resp.QuarterlyRevenue, 4)
	assert.Equal(t, "Quý 1", resp.QuarterlyRevenue[0].Quarter)
	assert.Equal(t, float64(500000), resp.QuarterlyRevenue[0].Revenue)
	assert.Equal(t, float64(500000), resp.QuarterlyRevenue[1].Revenue)
	assert.Equal(t, float64(0), resp.QuarterlyRevenue[2].Revenue)
}

func TestRevenueOverviewCurrentWindows(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewRevenueService(db)

	now := time.Now()
	seedPayment(t, db, 150000, constants.PaymentMethodCash, now)

	resp, err := svc.Overview(now.Year())
	require.NoError(t, err)

	assert.Equal(t, float64(150000), resp.TotalRevenue)
	assert.Equal(t, float64(150000), resp.TodayRevenue)
	assert.Equal(t, float64(150000), resp.CurrentWeekRevenue)
	assert.Equal(t, float64(150000), resp.CurrentMonthRevenue)
	assert.Equal(t, float64(0), resp.LastMonthRevenue)
}

func TestRevenueByMethod(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewRevenueService(db)

	loc := time.UTC
	from := time.Date(2030, 3, 1, 0, 0, 0, 0, loc)
	to := time.Date(2030, 4, 1, 0, 0, 0, 0, loc)

	seedPayment(t, db, 200000, constants.PaymentMethodCash, time.Date(2030, 3, 10, 20, 0, 0, 0, loc))
	seedPayment(t, db, 300000, constants.PaymentMethodCash, time.Date(2030, 3, 12, 20, 0, 0, 0, loc))
	seedPayment(t, db, 400000, constants.PaymentMethodTransfer, time.Date(2030, 3, 15, 20, 0, 0, 0, loc))
	// Ngoài khoảng
	seedPayment(t, db, 999999, constants.PaymentMethodCash, time.Date(2030, 4, 1, 0, 0, 0, 0, loc))

	results, err := svc.ByMethod(from, to)
	require.NoError(t, err)
	require.Len(t, results, 2)

	byMethod := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range results {
		byMethod[r.PaymentMethod] = r.Revenue
		counts[r.PaymentMethod] = r.PaymentCount
	}
	assert.Equal(t, float64(500000), byMethod[constants.PaymentMethodCash])
	assert.Equal(t, 2, counts[constants.PaymentMethodCash])
	assert.Equal(t, float64(400000), byMethod[constants.PaymentMethodTransfer])
}
