package dialog

import (
	"reserva_bot/constant"
	"reserva_bot/entity"
	"reserva_bot/model"
	"reserva_bot/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DialogueState is a sealed union: a session is either Idle or Collecting.
// Transition points type-switch over it exhaustively.
type DialogueState interface {
	isDialogueState()
}

// Idle means no multi-turn action is pending
type Idle struct{}

func (Idle) isDialogueState() {}

// Collecting means a reservation is in progress and every incoming utterance
// is treated as a slot-filling answer
type Collecting struct {
	Pending *PendingAction
}

func (Collecting) isDialogueState() {}

// PendingAction is the single in-progress multi-turn operation of a session
type PendingAction struct {
	Action string
	Slots  Slots
}

// Session owns all per-conversation state. There is exactly one writer (the
// current turn) and no concurrent readers, so no locking.
type Session struct {
	ID      string
	History []model.HistoryMessage

	// Reservations made or loaded in this session, oldest first. The most
	// recent one is the cancellation target.
	Reservations []*entity.Reservation

	State DialogueState
}

// NewSession creates a session seeded with the persisted reservations.
// The store is read exactly once here; a corrupt store fails the session.
func NewSession(repo repository.ReservationRepository) (*Session, error) {
	reservations, err := repo.LoadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load persisted reservations")
	}

	sess := &Session{
		ID:           uuid.NewString(),
		Reservations: reservations,
		State:        Idle{},
	}
	log.Infof("session %s started with %d persisted reservations", sess.ID, len(reservations))
	return sess, nil
}

// AppendUser records one user utterance
func (s *Session) AppendUser(content string) {
	s.History = append(s.History, model.HistoryMessage{Role: constant.RoleUser, Content: content})
}

// AppendBot records one bot reply with optional turn metadata
func (s *Session) AppendBot(content string, meta *model.TurnMeta) {
	s.History = append(s.History, model.HistoryMessage{Role: constant.RoleBot, Content: content, Meta: meta})
}

// HistoryTail returns the last limit messages for display. The underlying
// history is never evicted.
func (s *Session) HistoryTail(limit int) []model.HistoryMessage {
	if limit <= 0 || limit >= len(s.History) {
		return s.History
	}
	return s.History[len(s.History)-limit:]
}

// PopReservation removes and returns the most recently added reservation,
// or nil when none exist. The durable store keeps its record: it is
// append-only from this session's perspective.
func (s *Session) PopReservation() *entity.Reservation {
	if len(s.Reservations) == 0 {
		return nil
	}
	last := s.Reservations[len(s.Reservations)-1]
	s.Reservations = s.Reservations[:len(s.Reservations)-1]
	return last
}
