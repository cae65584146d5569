package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"ktv/constants"
	"ktv/dto"
	"ktv/errors"
	"ktv/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// RoomSearchService tìm phòng theo mô tả tự nhiên: tên gần đúng, loại
// phòng tiếng Việt và sức chứa ("phong vip 8 nguoi")
type RoomSearchService struct {
	db *gorm.DB
}

func NewRoomSearchService(db *gorm.DB) *RoomSearchService {
	return &RoomSearchService{db: db}
}

// Từ khóa tiếng Việt (đã bỏ dấu) ánh xạ về loại phòng
var roomTypeKeywords = map[string]string{
	"vip":        constants.RoomTypeVIP,
	"cao cap":    constants.RoomTypeVIP,
	"thuong":     constants.RoomTypeStandard,
	"binh dan":   constants.RoomTypeStandard,
	"tieu chuan": constants.RoomTypeStandard,
	"party":      constants.RoomTypeParty,
	"tiec":       constants.RoomTypeParty,
	"sinh nhat":  constants.RoomTypeParty,
}

var capacityPattern = regexp.MustCompile(`(\d+)\s*(?:nguoi|khach|cho)`)

// normalizeQuery bỏ dấu tiếng Việt và đưa về chữ thường
func normalizeQuery(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}

// Search chấm điểm toàn bộ phòng theo query và trả về danh sách giảm dần
// theo điểm. Phòng điểm 0 bị loại.
func (s *RoomSearchService) Search(query string) ([]dto.ScoredRoom, error) {
	normalized := normalizeQuery(query)
	if normalized == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Từ khóa tìm kiếm không được để trống", nil)
	}

	var rooms []models.Room
	if err := s.db.Order("name ASC").Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách phòng", err)
	}
	if len(rooms) == 0 {
		return []dto.ScoredRoom{}, nil
	}

	names := make([]string, len(rooms))
	for i, room := range rooms {
		names[i] = normalizeQuery(room.Name)
	}
	cm := closestmatch.New(names, []int{2, 3})
	bestName := cm.Closest(normalized)

	wantedType := ""
	for keyword, roomType := range roomTypeKeywords {
		if strings.Contains(normalized, keyword) {
			wantedType = roomType
			break
		}
	}

	wantedCapacity := 0
	if m := capacityPattern.FindStringSubmatch(normalized); m != nil {
		wantedCapacity, _ = strconv.Atoi(m[1])
	}

	scored := make([]dto.ScoredRoom, 0, len(rooms))
	for i, room := range rooms {
		score := 0

		if names[i] == bestName && nameSimilarity(normalized, names[i]) >= 40 {
			score += 50
		} else if strings.Contains(normalized, names[i]) || strings.Contains(names[i], normalized) {
			score += 40
		} else if sim := nameSimilarity(normalized, names[i]); sim >= 60 {
			score += sim / 2
		}

		if wantedType != "" && room.Type == wantedType {
			score += 30
		}
		if wantedCapacity > 0 && room.Capacity >= wantedCapacity {
			score += 20
			// Ưu tiên phòng vừa khít hơn phòng quá rộng
			if room.Capacity <= wantedCapacity+2 {
				score += 10
			}
		}

		if score == 0 {
			continue
		}

		scored = append(scored, dto.ScoredRoom{
			Room: dto.RoomResponse{
				ID:           room.ID,
				Name:         room.Name,
				Type:         room.Type,
				PricePerHour: room.PricePerHour,
				Capacity:     room.Capacity,
				Description:  room.Description,
				Avatar:       room.Avatar,
				CreatedAt:    room.CreatedAt,
				UpdatedAt:    room.UpdatedAt,
			},
			Score: score,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}

// nameSimilarity đo độ giống hai chuỗi theo khoảng cách Levenshtein, trả
// về phần trăm 0..100
func nameSimilarity(a, b string) int {
	if a == b {
		return 100
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 0
	}
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	return (maxLen - distance) * 100 / maxLen
}
