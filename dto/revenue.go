package dto

// MonthRevenue là doanh thu của một tháng
type MonthRevenue struct {
	Month        string  `json:"month"`
	Revenue      float64 `json:"revenue"`
	PaymentCount int     `json:"payment_count"`
}

// QuarterRevenue là doanh thu của một quý
type QuarterRevenue struct {
	Quarter      string  `json:"quarter"`
	Revenue      float64 `json:"revenue"`
	PaymentCount int     `json:"payment_count"`
}

// RevenueResponse là DTO cho response tổng quan doanh thu
type RevenueResponse struct {
	TotalRevenue        float64          `json:"total_revenue"`
	CurrentMonthRevenue float64          `json:"current_month_revenue"`
	LastMonthRevenue    float64          `json:"last_month_revenue"`
	CurrentWeekRevenue  float64          `json:"current_week_revenue"`
	TodayRevenue        float64          `json:"today_revenue"`
	MonthlyRevenue      []MonthRevenue   `json:"monthly_revenue"`
	QuarterlyRevenue    []QuarterRevenue `json:"quarterly_revenue"`
}

// MethodRevenue là doanh thu theo phương thức thanh toán
type MethodRevenue struct {
	PaymentMethod string  `json:"payment_method"`
	Revenue       float64 `json:"revenue"`
	PaymentCount  int     `json:"payment_count"`
}
