package reservation

import "errors"

var (
	ErrInvalidReservation  = errors.New("invalid reservation")
	ErrUserAlreadyReserved = errors.New("client already has a reservation")
	ErrRepeatedID          = errors.New("reservation id already exists")
	ErrNoReservation       = errors.New("reservation does not exist")
)
