package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"ktv/config"
	"ktv/dto"
	"ktv/response"
	"ktv/services"
	"ktv/validator"

	"github.com/gin-gonic/gin"
)

func revenueYear(c *gin.Context) (int, bool) {
	year := time.Now().Year()
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(c, "Năm không hợp lệ")
			return 0, false
		}
		year = parsed
	}
	return year, true
}

// cachedOverview lấy tổng quan doanh thu, ưu tiên cache Redis với TTL ngắn
func cachedOverview(year int) (*dto.RevenueResponse, error) {
	cacheKey := fmt.Sprintf("revenue:overview:%d", year)

	if config.RedisClient != nil {
		var cached dto.RevenueResponse
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &cached); err == nil && cached.MonthlyRevenue != nil {
			return &cached, nil
		}
	}

	resp, err := revenueService().Overview(year)
	if err != nil {
		return nil, err
	}

	if config.RedisClient != nil {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, resp, 5*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu doanh thu vào Redis: %v", err)
		}
	}
	return resp, nil
}

// GetRevenue trả về tổng quan doanh thu theo năm
func GetRevenue(c *gin.Context) {
	year, ok := revenueYear(c)
	if !ok {
		return
	}

	resp, err := cachedOverview(year)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, resp)
}

// GetMonthlyRevenue trả về phân rã doanh thu theo tháng của một năm
func GetMonthlyRevenue(c *gin.Context) {
	year, ok := revenueYear(c)
	if !ok {
		return
	}

	resp, err := cachedOverview(year)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{
		"year":              year,
		"monthly_revenue":   resp.MonthlyRevenue,
		"quarterly_revenue": resp.QuarterlyRevenue,
	})
}

// GetTodayRevenue trả về doanh thu hôm nay và tuần này
func GetTodayRevenue(c *gin.Context) {
	resp, err := revenueService().Overview(time.Now().Year())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{
		"today_revenue":        resp.TodayRevenue,
		"current_week_revenue": resp.CurrentWeekRevenue,
	})
}

// GetRevenueByMethod trả về doanh thu theo phương thức thanh toán trong
// khoảng [from, to)
func GetRevenueByMethod(c *gin.Context) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := validator.ParseTimestamp(fromStr, "from")
		if err != nil {
			response.FromError(c, err)
			return
		}
		from = parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := validator.ParseTimestamp(toStr, "to")
		if err != nil {
			response.FromError(c, err)
			return
		}
		to = parsed
	}
	if err := validator.ValidateTimeRange(from, to); err != nil {
		response.FromError(c, err)
		return
	}

	results, err := revenueService().ByMethod(from, to)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, results)
}
