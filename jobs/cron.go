package jobs

import (
	"log"
	"time"

	"ktv/services"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// BookingSweeper định nghĩa interface cho việc quét booking quá giờ
type BookingSweeper interface {
	UpdateBookingStatusByTime() (int64, error)
}

var bookingSweeper BookingSweeper

// SetBookingSweeper thiết lập implementation cho BookingSweeper
func SetBookingSweeper(sweeper BookingSweeper) {
	bookingSweeper = sweeper
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cứ 10 phút quét một lần các booking đã qua giờ kết thúc
	_, err := c.AddFunc("*/10 * * * *", func() {
		if bookingSweeper == nil {
			log.Printf("Lỗi: BookingSweeper chưa được thiết lập")
			return
		}
		swept, err := bookingSweeper.UpdateBookingStatusByTime()
		if err != nil {
			log.Printf("Lỗi khi quét booking quá giờ: %v", err)
			return
		}
		if swept > 0 {
			services.BroadcastBookingEvent(m, services.BookingEvent{
				Type:   "booking_status",
				Status: "completed",
				At:     time.Now(),
			})
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
