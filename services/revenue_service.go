package services

import (
	"fmt"
	"time"

	"ktv/dto"
	"ktv/errors"
	"ktv/models"

	"gorm.io/gorm"
)

// RevenueService tổng hợp doanh thu từ các bản ghi thanh toán
type RevenueService struct {
	db *gorm.DB
}

func NewRevenueService(db *gorm.DB) *RevenueService {
	return &RevenueService{db: db}
}

// Overview tổng hợp doanh thu của một năm: tổng, tháng hiện tại, tháng
// trước, tuần này, hôm nay, kèm phân rã theo tháng và theo quý. Gom nhóm
// được làm phía Go trên toàn bộ payment của năm thay vì GROUP BY.
func (s *RevenueService) Overview(year int) (*dto.RevenueResponse, error) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}

	yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, now.Location())
	yearEnd := yearStart.AddDate(1, 0, 0)

	var payments []models.Payment
	err := s.db.Where("payment_date >= ? AND payment_date < ?", yearStart, yearEnd).
		Find(&payments).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách thanh toán", err)
	}

	resp := &dto.RevenueResponse{
		MonthlyRevenue:   make([]dto.MonthRevenue, 12),
		QuarterlyRevenue: make([]dto.QuarterRevenue, 4),
	}
	for i := 0; i < 12; i++ {
		resp.MonthlyRevenue[i].Month = fmt.Sprintf("Tháng %d", i+1)
	}
	for i := 0; i < 4; i++ {
		resp.QuarterlyRevenue[i].Quarter = fmt.Sprintf("Quý %d", i+1)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := startOfWeek(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	for _, p := range payments {
		resp.TotalRevenue += p.Amount

		month := int(p.PaymentDate.Month()) - 1
		resp.MonthlyRevenue[month].Revenue += p.Amount
		resp.MonthlyRevenue[month].PaymentCount++

		quarter := month / 3
		resp.QuarterlyRevenue[quarter].Revenue += p.Amount
		resp.QuarterlyRevenue[quarter].PaymentCount++

		if !p.PaymentDate.Before(monthStart) {
			resp.CurrentMonthRevenue += p.Amount
		}
		if !p.PaymentDate.Before(lastMonthStart) && p.PaymentDate.Before(monthStart) {
			resp.LastMonthRevenue += p.Amount
		}
		if !p.PaymentDate.Before(weekStart) {
			resp.CurrentWeekRevenue += p.Amount
		}
		if !p.PaymentDate.Before(today) {
			resp.TodayRevenue += p.Amount
		}
	}

	return resp, nil
}

// ByMethod tổng hợp doanh thu theo phương thức thanh toán trong khoảng
// [from, to)
func (s *RevenueService) ByMethod(from, to time.Time) ([]dto.MethodRevenue, error) {
	var payments []models.Payment
	err := s.db.Where("payment_date >= ? AND payment_date < ?", from, to).
		Find(&payments).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách thanh toán", err)
	}

	byMethod := make(map[string]*dto.MethodRevenue)
	order := make([]string, 0, 4)
	for _, p := range payments {
		entry, ok := byMethod[p.PaymentMethod]
		if !ok {
			entry = &dto.MethodRevenue{PaymentMethod: p.PaymentMethod}
			byMethod[p.PaymentMethod] = entry
			order = append(order, p.PaymentMethod)
		}
		entry.Revenue += p.Amount
		entry.PaymentCount++
	}

	results := make([]dto.MethodRevenue, 0, len(order))
	for _, method := range order {
		results = append(results, *byMethod[method])
	}
	return results, nil
}

// startOfWeek trả về 0h thứ Hai của tuần chứa t
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}
