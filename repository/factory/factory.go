package factory

import (
	"reserva_bot/repository"
)

type Factory interface {
	NewReservationRepository() (repository.ReservationRepository, error)
}
