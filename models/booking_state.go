package models

import (
	"errors"

	"ktv/constants"
)

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	Confirm(b *Booking) error
	Cancel(b *Booking) error
	Complete(b *Booking) error
}

// PendingState trạng thái chờ xác nhận
type PendingState struct{}

func (s *PendingState) Confirm(b *Booking) error {
	b.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(b *Booking) error {
	b.Status = constants.BookingStatusCancelled
	return nil
}

func (s *PendingState) Complete(b *Booking) error {
	return errors.New("cannot complete pending booking")
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(b *Booking) error {
	return errors.New("booking already confirmed")
}

func (s *ConfirmedState) Cancel(b *Booking) error {
	b.Status = constants.BookingStatusCancelled
	return nil
}

func (s *ConfirmedState) Complete(b *Booking) error {
	b.Status = constants.BookingStatusCompleted
	return nil
}

// CompletedState trạng thái hoàn thành
type CompletedState struct{}

func (s *CompletedState) Confirm(b *Booking) error {
	return errors.New("booking already completed")
}

func (s *CompletedState) Cancel(b *Booking) error {
	return errors.New("cannot cancel completed booking")
}

func (s *CompletedState) Complete(b *Booking) error {
	return errors.New("booking already completed")
}

// CancelledState trạng thái đã hủy
type CancelledState struct{}

func (s *CancelledState) Confirm(b *Booking) error {
	return errors.New("cannot confirm cancelled booking")
}

func (s *CancelledState) Cancel(b *Booking) error {
	return errors.New("booking already cancelled")
}

func (s *CancelledState) Complete(b *Booking) error {
	return errors.New("cannot complete cancelled booking")
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusPending:
		return &PendingState{}
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCompleted:
		return &CompletedState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
