package controllers

import (
	"context"
	"log"
	"strconv"
	"time"

	"ktv/config"
	"ktv/dto"
	"ktv/models"
	"ktv/response"
	"ktv/services"
	"ktv/validator"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const roomsCacheKey = "rooms:all"

// GetAllRooms liệt kê toàn bộ phòng, ưu tiên đọc từ cache Redis. Lọc
// theo loại và sức chứa được làm trên dữ liệu đã cache.
func GetAllRooms(c *gin.Context) {
	var rooms []models.Room
	cached := false

	if config.RedisClient != nil {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, roomsCacheKey, &rooms); err == nil && len(rooms) > 0 {
			cached = true
		}
	}

	if !cached {
		if err := config.DB.Order("name ASC").Find(&rooms).Error; err != nil {
			response.ServerError(c)
			return
		}
		if config.RedisClient != nil {
			if err := services.SetToRedis(config.Ctx, config.RedisClient, roomsCacheKey, rooms, 60*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
			}
		}
	}

	roomType := c.Query("type")
	minCapacity, _ := strconv.Atoi(c.DefaultQuery("min_capacity", "0"))

	results := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		if roomType != "" && rooms[i].Type != roomType {
			continue
		}
		if minCapacity > 0 && rooms[i].Capacity < minCapacity {
			continue
		}
		results = append(results, toRoomResponse(&rooms[i]))
	}
	response.Success(c, results)
}

// invalidateRoomsCache xóa cache danh sách phòng sau khi phòng thay đổi
func invalidateRoomsCache() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, roomsCacheKey); err != nil {
		log.Printf("Lỗi khi xóa cache phòng: %v", err)
	}
}

// GetRoomDetail lấy chi tiết một phòng
func GetRoomDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, toRoomResponse(&room))
}

// CreateRoom tạo phòng mới
func CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room := models.Room{
		Name:         req.Name,
		Type:         req.Type,
		PricePerHour: req.PricePerHour,
		Capacity:     req.Capacity,
		Description:  req.Description,
		Avatar:       req.Avatar,
	}
	if err := validator.ValidateRoom(&room); err != nil {
		response.FromError(c, err)
		return
	}

	var count int64
	if err := config.DB.Model(&models.Room{}).Where("name = ?", room.Name).Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Conflict(c, "Tên phòng đã tồn tại")
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomsCache()
	response.Created(c, toRoomResponse(&room))
}

// UpdateRoom cập nhật thông tin phòng
func UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.Name != "" {
		room.Name = req.Name
	}
	if req.Type != "" {
		room.Type = req.Type
	}
	if req.PricePerHour > 0 {
		room.PricePerHour = req.PricePerHour
	}
	if req.Capacity > 0 {
		room.Capacity = req.Capacity
	}
	if req.Description != "" {
		room.Description = req.Description
	}
	if req.Avatar != "" {
		room.Avatar = req.Avatar
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomsCache()
	response.Success(c, toRoomResponse(&room))
}

// DeleteRoom xóa phòng chưa có dòng đặt phòng nào
func DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var count int64
	err = config.DB.Model(&models.BookingRoom{}).Where("room_id = ?", uint(id)).Count(&count).Error
	if err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Conflict(c, "Phòng đã có lịch sử đặt, không thể xóa")
		return
	}

	result := config.DB.Delete(&models.Room{}, uint(id))
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	invalidateRoomsCache()
	response.Success(c, gin.H{"id": id, "deleted": true})
}

// SearchRooms tìm phòng theo mô tả tự nhiên ("phong vip 8 nguoi")
func SearchRooms(c *gin.Context) {
	query := c.Query("q")
	results, err := roomSearchService().Search(query)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, results)
}

// UploadRoomImage upload ảnh phòng lên Cloudinary và lưu URL vào avatar
func UploadRoomImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "Không tìm thấy file ảnh")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Lỗi khi mở file")
		return
	}
	defer src.Close()

	ctx := context.Background()
	resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
	if err != nil {
		log.Printf("Lỗi khi upload ảnh phòng: %v", err)
		response.ServerError(c)
		return
	}

	room.Avatar = resp.SecureURL
	if err := config.DB.Model(&room).Update("avatar", room.Avatar).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomsCache()
	response.Success(c, gin.H{"id": room.ID, "avatar": room.Avatar})
}
