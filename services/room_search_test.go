package services_test

import (
	"testing"

	"ktv/constants"
	"ktv/errors"
	"ktv/models"
	"ktv/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTypedRoom(t *testing.T, db *gorm.DB, name, roomType string, capacity int) *models.Room {
	room := &models.Room{
		Name:         name,
		Type:         roomType,
		PricePerHour: 100000,
		Capacity:     capacity,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func TestSearchFindsRoomByVietnameseTypeKeyword(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewRoomSearchService(db)

	seedTypedRoom(t, db, "Hoa Hồng", constants.RoomTypeVIP, 8)
	seedTypedRoom(t, db, "Hoa Mai", constants.RoomTypeStandard, 4)

	// Có dấu tiếng Việt, tìm theo loại phòng
	results, err := svc.Search("phòng VIP")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Hoa Hồng", results[0].Room.Name)
	assert.Equal(t, constants.RoomTypeVIP, results[0].Room.Type)
}

func TestSearchMatchesCapacity(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewRoomSearchService(db)

	seedTypedRoom(t, db, "Hoa Hồng", constants.RoomTypeParty, 20)
	seedTypedRoom(t, db, "Hoa Mai", constants.RoomTypeParty, 10)

	results, err := svc.Search("phong tiec 10 nguoi")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	// Phòng vừa khít sức chứa đứng đầu
	assert.Equal(t, "Hoa Mai", results[0].Room.Name)
}

func TestSearchMatchesApproximateName(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewRoomSearchService(db)

	seedTypedRoom(t, db, "Hoa Hồng", constants.RoomTypeVIP, 8)
	seedTypedRoom(t, db, "Biển Xanh", constants.RoomTypeStandard, 6)

	results, err := svc.Search("hoa hong")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Hoa Hồng", results[0].Room.Name)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewRoomSearchService(db)

	_, err := svc.Search("   ")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeRequiredField))
}

func TestSearchWithNoRooms(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewRoomSearchService(db)

	results, err := svc.Search("phong vip")
	require.NoError(t, err)
	assert.Empty(t, results)
}
