package xormimplement

import (
	"reserva_bot/entity"
	"reserva_bot/repository"

	"github.com/pkg/errors"
	"xorm.io/builder"
	"xorm.io/xorm"
)

type ReservationRepository struct {
	engine *xorm.Engine
}

func NewReservationRepository(engine *xorm.Engine) repository.ReservationRepository {
	return &ReservationRepository{engine: engine}
}

// Append inserts one reservation row
func (r *ReservationRepository) Append(reservation *entity.Reservation) error {
	if reservation == nil {
		return errors.New("reservation cannot be nil")
	}

	if _, err := r.engine.Table(entity.TableNameReservation).Insert(reservation); err != nil {
		return errors.Wrap(err, "failed to insert reservation")
	}
	return nil
}

// LoadAll returns every reservation in insertion order
func (r *ReservationRepository) LoadAll() ([]*entity.Reservation, error) {
	reservations := make([]*entity.Reservation, 0)
	err := r.engine.Table(entity.TableNameReservation).
		Where(builder.Gt{"id": 0}).
		Asc("id").
		Find(&reservations)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reservations")
	}
	return reservations, nil
}
