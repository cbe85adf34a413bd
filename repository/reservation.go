package repository

import (
	"reserva_bot/entity"
)

// ReservationRepository is the durable reservation store.
// Append-only: a persisted reservation is never updated or removed.
type ReservationRepository interface {
	// Append persists one finalized reservation
	Append(reservation *entity.Reservation) error
	// LoadAll returns every persisted reservation in insertion order
	LoadAll() ([]*entity.Reservation, error)
}
