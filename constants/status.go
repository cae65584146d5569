package constants

// Trạng thái booking / booking room
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Trạng thái thanh toán của booking room
const (
	PaymentStatusUnpaid        = "unpaid"
	PaymentStatusPartiallyPaid = "partially_paid"
	PaymentStatusPaid          = "paid"
)

// Phương thức thanh toán
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
	PaymentMethodEWallet  = "e_wallet"
)

// Loại phòng karaoke
const (
	RoomTypeStandard = "standard"
	RoomTypeVIP      = "vip"
	RoomTypeParty    = "party"
)

// Role người dùng
const (
	RoleAdmin = 1
	RoleStaff = 2
)
