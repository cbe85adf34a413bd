package dialog

import (
	"context"
	"math"
	"sync"

	"reserva_bot/config"
	"reserva_bot/constant"
	"reserva_bot/entity"
	"reserva_bot/model"
	"reserva_bot/pkg/clients/embedding"
	"reserva_bot/pkg/clients/ner"
	"reserva_bot/pkg/entityextract"
	"reserva_bot/pkg/intent"
	"reserva_bot/pkg/str"
	projecttime "reserva_bot/pkg/time"
	"reserva_bot/repository"
	"reserva_bot/repository/factory"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	log "github.com/sirupsen/logrus"
)

var (
	serviceOnce sync.Once
	instance    *Service
)

// IntentClassifier resolves an utterance to an intent with a confidence
type IntentClassifier interface {
	Classify(ctx context.Context, utterance string) (*intent.Result, error)
}

// EntityExtractor produces the entity set of one utterance
type EntityExtractor interface {
	Extract(ctx context.Context, utterance string) (entityextract.EntitySet, error)
}

type handlerFunc func(ctx context.Context, entities entityextract.EntitySet) string

// Service is the dialogue decision engine: one turn in, one reply out
type Service struct {
	classifier IntentClassifier
	extractor  EntityExtractor
	repo       repository.ReservationRepository
	session    *Session
	handlers   map[string]handlerFunc
}

// NewService returns the engine singleton. The classifier precomputes the
// catalog embeddings here, so a missing model backend fails the process at
// startup instead of mid-conversation.
func NewService(repositoryFactory factory.Factory) *Service {
	serviceOnce.Do(func() {
		encoder, err := embedding.GetInstance()
		if err != nil {
			panic("failed to create embedding client: " + err.Error())
		}

		threshold := config.GetInstance().GetFloat64OrDefault(
			config.BotSimilarityThreshold, intent.DefaultSimilarityThreshold)
		classifier, err := intent.NewClassifier(context.Background(), encoder, intent.DefaultCatalog(), threshold)
		if err != nil {
			panic("failed to build intent classifier: " + err.Error())
		}

		extractor := entityextract.NewExtractor(ner.GetInstance())

		svc, err := newService(repositoryFactory, classifier, extractor)
		if err != nil {
			panic("failed to create dialog service: " + err.Error())
		}
		instance = svc
	})

	return instance
}

// newService wires an engine with explicit collaborators
func newService(repositoryFactory factory.Factory, classifier IntentClassifier, extractor EntityExtractor) (*Service, error) {
	repo, err := repositoryFactory.NewReservationRepository()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create reservation repository")
	}

	session, err := NewSession(repo)
	if err != nil {
		return nil, err
	}

	s := &Service{
		classifier: classifier,
		extractor:  extractor,
		repo:       repo,
		session:    session,
	}
	s.handlers = map[string]handlerFunc{
		intent.IntentSaludo:          s.handleSaludo,
		intent.IntentDespedida:       s.handleDespedida,
		intent.IntentReservarMesa:    s.handleReservarMesa,
		intent.IntentCancelarReserva: s.handleCancelarReserva,
		intent.IntentPreguntaMenu:    s.handlePreguntaMenu,
		intent.IntentPreguntaHorario: s.handlePreguntaHorario,
		intent.IntentConfirmacion:    s.handleConfirmacion,
		intent.IntentNegacion:        s.handleNegacion,
		intent.IntentFallback:        s.handleFallback,
	}
	return s, nil
}

// Session exposes the session state for the presentation layer
func (s *Service) Session() *Session {
	return s.session
}

// HandleTurn processes one utterance: while a reservation is being
// collected the turn is a slot-filling answer and the classifier is never
// invoked; otherwise the turn is classified and dispatched by intent.
func (s *Service) HandleTurn(ctx context.Context, message string) (*model.ChatResponse, *model.Error) {
	message = str.NormalizeSpace(message)
	if message == constant.EmptyString {
		return nil, model.NewError(model.ErrorEmptyMessage, errors.New("empty message"))
	}

	s.session.AppendUser(message)

	var reply string
	var meta *model.TurnMeta

	switch state := s.session.State.(type) {
	case Collecting:
		entities, err := s.extractor.Extract(ctx, message)
		if err != nil {
			return nil, model.NewError(model.ErrorModelUnavailable, err)
		}
		reply = s.continueCollecting(state, entities)

	case Idle:
		result, err := s.classifier.Classify(ctx, message)
		if err != nil {
			return nil, model.NewError(model.ErrorModelUnavailable, err)
		}
		entities, err := s.extractor.Extract(ctx, message)
		if err != nil {
			return nil, model.NewError(model.ErrorModelUnavailable, err)
		}

		meta = &model.TurnMeta{
			Intent:     result.Intent,
			Confidence: round3(result.Confidence),
			Entities:   entities,
		}

		handler, ok := s.handlers[result.Intent]
		if !ok {
			reply = replyDefault
		} else {
			reply = handler(ctx, entities)
		}

	default:
		return nil, model.NewError(model.ErrorParams, errors.Errorf("unknown dialogue state %T", state))
	}

	s.session.AppendBot(reply, meta)
	return &model.ChatResponse{Reply: reply, SessionID: s.session.ID, Meta: meta}, nil
}

// continueCollecting fills remaining slots from the current utterance and
// either re-prompts or finalizes
func (s *Service) continueCollecting(state Collecting, entities entityextract.EntitySet) string {
	state.Pending.Slots.FillFrom(entities)
	if !state.Pending.Slots.Complete() {
		return promptForMissingSlot(&state.Pending.Slots)
	}
	return s.finalize(state.Pending)
}

// finalize persists the reservation and returns the session to Idle
func (s *Service) finalize(pending *PendingAction) string {
	numPersonas, err := cast.ToIntE(pending.Slots.NumPersonas)
	if err != nil {
		// FillFrom guards against this; a failure means the slot got
		// corrupted, so re-collect it
		log.Errorf("invalid party size %q: %v", pending.Slots.NumPersonas, err)
		pending.Slots.NumPersonas = constant.EmptyString
		s.session.State = Collecting{Pending: pending}
		return replyAskNumPersonas
	}

	reservation := &entity.Reservation{
		NumPersonas: numPersonas,
		Date:        pending.Slots.Date,
		Time:        pending.Slots.Time,
		CreatedAt:   projecttime.NowCreatedAt(),
	}

	if err := s.repo.Append(reservation); err != nil {
		log.Errorf("failed to persist reservation: %v", err)
		s.session.State = Collecting{Pending: pending}
		return replyStoreTrouble
	}

	s.session.Reservations = append(s.session.Reservations, reservation)
	s.session.State = Idle{}
	log.Infof("reservation confirmed: %d personas, %s %s", reservation.NumPersonas, reservation.Date, reservation.Time)
	return confirmedReply(reservation)
}

// ========== Intent handlers (Idle state only) ==========

func (s *Service) handleSaludo(_ context.Context, _ entityextract.EntitySet) string {
	return chooseReply(greetingReplies)
}

func (s *Service) handleDespedida(_ context.Context, _ entityextract.EntitySet) string {
	return chooseReply(farewellReplies)
}

func (s *Service) handleReservarMesa(_ context.Context, entities entityextract.EntitySet) string {
	pending := &PendingAction{Action: intent.IntentReservarMesa}
	pending.Slots.FillFrom(entities)

	// everything in one utterance: Idle -> Collecting -> Idle in one turn
	if pending.Slots.Complete() {
		return s.finalize(pending)
	}

	s.session.State = Collecting{Pending: pending}
	return promptForMissingSlot(&pending.Slots)
}

func (s *Service) handleCancelarReserva(_ context.Context, _ entityextract.EntitySet) string {
	removed := s.session.PopReservation()
	if removed == nil {
		return replyNothingToCancel
	}
	return cancelledReply(removed)
}

func (s *Service) handlePreguntaMenu(_ context.Context, _ entityextract.EntitySet) string {
	return replyMenu
}

func (s *Service) handlePreguntaHorario(_ context.Context, _ entityextract.EntitySet) string {
	return replySchedule
}

func (s *Service) handleConfirmacion(_ context.Context, _ entityextract.EntitySet) string {
	return replyConfirmation
}

func (s *Service) handleNegacion(_ context.Context, _ entityextract.EntitySet) string {
	return replyNegation
}

func (s *Service) handleFallback(_ context.Context, _ entityextract.EntitySet) string {
	return replyFallback
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
