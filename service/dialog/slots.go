package dialog

import (
	"strconv"

	"reserva_bot/constant"
	"reserva_bot/pkg/entityextract"
)

// Slots holds the three pieces a reservation needs. Empty string means
// "not yet known".
type Slots struct {
	NumPersonas string
	Date        string
	Time        string
}

// Complete reports whether every slot is filled
func (sl *Slots) Complete() bool {
	return sl.NumPersonas != constant.EmptyString &&
		sl.Date != constant.EmptyString &&
		sl.Time != constant.EmptyString
}

// FillFrom fills the empty slots from one turn's entity set. Filled slots
// are never overwritten. Party size consults the explicit pattern label
// first, then the generic NER cardinal, and only accepts values that parse
// as an integer so the store invariant holds at finalize.
func (sl *Slots) FillFrom(entities entityextract.EntitySet) {
	if sl.NumPersonas == constant.EmptyString {
		if v, ok := entities[entityextract.LabelNumPersonas]; ok && isInt(v) {
			sl.NumPersonas = v
		} else if v, ok := entities[entityextract.LabelCardinal]; ok && isInt(v) {
			sl.NumPersonas = v
		}
	}
	if sl.Date == constant.EmptyString {
		if v, ok := entities[entityextract.LabelDate]; ok {
			sl.Date = v
		}
	}
	if sl.Time == constant.EmptyString {
		if v, ok := entities[entityextract.LabelTime]; ok {
			sl.Time = v
		}
	}
}

func isInt(v string) bool {
	_, err := strconv.Atoi(v)
	return err == nil
}
