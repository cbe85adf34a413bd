package csvimplement

import (
	"encoding/csv"
	"os"
	"strconv"
	"sync"

	"reserva_bot/entity"
	"reserva_bot/pkg/file"
	"reserva_bot/repository"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// header is the first record of every store file, in schema order
var header = []string{
	entity.ReservationFieldNumPersonas,
	entity.ReservationFieldDate,
	entity.ReservationFieldTime,
	entity.ReservationFieldCreatedAt,
}

// ReservationRepository is the append-only CSV store
type ReservationRepository struct {
	path string
	mu   sync.Mutex
}

func NewReservationRepository(path string) repository.ReservationRepository {
	return &ReservationRepository{path: path}
}

// Append writes one reservation record, creating the file with its header
// row on first use
func (r *ReservationRepository) Append(reservation *entity.Reservation) error {
	if reservation == nil {
		return errors.New("reservation cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed to open reservation store %s", r.path)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return errors.WithStack(err)
	}

	writer := csv.NewWriter(f)
	// a zero-byte file (new or pre-created) still needs the header row
	if info.Size() == 0 {
		if err := writer.Write(header); err != nil {
			return errors.WithStack(err)
		}
	}

	record := []string{
		strconv.Itoa(reservation.NumPersonas),
		reservation.Date,
		reservation.Time,
		reservation.CreatedAt,
	}
	if err := writer.Write(record); err != nil {
		return errors.WithStack(err)
	}

	writer.Flush()
	return errors.WithStack(writer.Error())
}

// LoadAll reads every persisted reservation. A missing file is an empty
// store. A record whose integer field does not parse means the store is
// corrupt: fail fast instead of coercing.
func (r *ReservationRepository) LoadAll() ([]*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !file.CheckFileIsExist(r.path) {
		return nil, nil
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open reservation store %s", r.path)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read reservation store %s", r.path)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// only skip the first record when it really is the header row
	rows := records
	if isHeader(records[0]) {
		rows = records[1:]
	}

	reservations := make([]*entity.Reservation, 0, len(rows))
	for i, record := range rows {
		if len(record) != len(header) {
			return nil, errors.Errorf("corrupt reservation store %s: record %d has %d fields, want %d",
				r.path, i+1, len(record), len(header))
		}

		numPersonas, err := cast.ToIntE(record[0])
		if err != nil {
			return nil, errors.Wrapf(err, "corrupt reservation store %s: bad %s at record %d",
				r.path, entity.ReservationFieldNumPersonas, i+1)
		}

		reservations = append(reservations, &entity.Reservation{
			NumPersonas: numPersonas,
			Date:        record[1],
			Time:        record[2],
			CreatedAt:   record[3],
		})
	}

	return reservations, nil
}

// isHeader reports whether a record is the schema header row
func isHeader(record []string) bool {
	if len(record) != len(header) {
		return false
	}
	for i := range header {
		if record[i] != header[i] {
			return false
		}
	}
	return true
}
