package storage

import "errors"

var ErrReservationNotFound = errors.New("reservation not found")
