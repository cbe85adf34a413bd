package entity

// ========== Reservation table / CSV schema ==========

const (
	TableNameReservation = "reservations"

	ReservationFieldNumPersonas = "num_personas"
	ReservationFieldDate        = "date"
	ReservationFieldTime        = "time"
	ReservationFieldCreatedAt   = "created_at"
)

// Reservation is one persisted reservation. Date, Time and CreatedAt stay
// text so every store implementation round-trips the original values
// byte for byte. Immutable once created.
type Reservation struct {
	ID          int64  `xorm:"pk autoincr 'id'" json:"-"`
	NumPersonas int    `xorm:"int 'num_personas'" json:"num_personas"`
	Date        string `xorm:"varchar(32) 'date'" json:"date"`
	Time        string `xorm:"varchar(16) 'time'" json:"time"`
	CreatedAt   string `xorm:"varchar(40) 'created_at'" json:"created_at"`
}

func (e *Reservation) TableName() string {
	return TableNameReservation
}
