package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/speech-service/internal/domain"
	"github.com/jsamuelsen/speech-service/internal/platform/logging"
	"github.com/jsamuelsen/speech-service/internal/ports"
)

const speechEntity = "speech"

// duplicateReason is reported when a create or update would repeat an existing speech.
const duplicateReason = "a speech with the same content, author, date, and keywords already exists"

// Operation outcomes recorded in speech_operations_total.
const (
	outcomeSuccess  = "success"
	outcomeNotFound = "not_found"
	outcomeConflict = "conflict"
	outcomeInvalid  = "invalid"
	outcomeError    = "error"
)

// SpeechService orchestrates the speech use cases.
// Every mutation runs in a single repository transaction so the duplicate
// check and the write see the same data.
type SpeechService struct {
	repo       ports.SpeechRepository
	logger     *slog.Logger
	now        func() time.Time
	operations *prometheus.CounterVec
}

// SpeechServiceConfig contains the dependencies of the speech service.
type SpeechServiceConfig struct {
	// Repository is required.
	Repository ports.SpeechRepository

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Clock defaults to time.Now.
	Clock func() time.Time

	// Registerer receives the operation counter. Nil leaves it unregistered.
	Registerer prometheus.Registerer
}

// NewSpeechService creates a speech service. It panics when no repository is given.
func NewSpeechService(cfg SpeechServiceConfig) *SpeechService {
	if cfg.Repository == nil {
		panic("app: SpeechServiceConfig.Repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	operations := promauto.With(cfg.Registerer).NewCounterVec(prometheus.CounterOpts{
		Name: "speech_operations_total",
		Help: "Speech operations by operation and outcome.",
	}, []string{"operation", "outcome"})

	return &SpeechService{
		repo:       cfg.Repository,
		logger:     logger.With(slog.String("component", "app.SpeechService")),
		now:        clock,
		operations: operations,
	}
}

// List returns every stored speech.
func (s *SpeechService) List(ctx context.Context) ([]domain.Speech, error) {
	speeches, err := s.repo.List(ctx)
	if err != nil {
		s.record("list", err)
		return nil, fmt.Errorf("list speeches: %w", err)
	}

	s.record("list", nil)

	return speeches, nil
}

// Get returns the speech with the given id.
func (s *SpeechService) Get(ctx context.Context, id int64) (*domain.Speech, error) {
	speech, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.record("get", err)

		if domain.IsNotFound(err) {
			s.log(ctx).WarnContext(ctx, "speech not found", slog.Int64("speech_id", id))
			return nil, err
		}

		return nil, fmt.Errorf("get speech %d: %w", id, err)
	}

	s.record("get", nil)
	s.log(ctx).InfoContext(ctx, "speech found", slog.Int64("speech_id", id))

	return speech, nil
}

// Search returns the speeches matching criteria.
// A search that matches nothing fails with a not found error.
func (s *SpeechService) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Speech, error) {
	criteria = criteria.Normalized()

	speeches, err := s.repo.Search(ctx, criteria)
	if err != nil {
		s.record("search", err)
		return nil, fmt.Errorf("search speeches: %w", err)
	}

	if len(speeches) == 0 {
		err := domain.NewNoMatchError("speeches", "the search criteria")
		s.record("search", err)
		s.log(ctx).WarnContext(ctx, "no speeches matched", slog.String("criteria", criteria.String()))

		return nil, err
	}

	s.record("search", nil)
	s.log(ctx).InfoContext(ctx, "speeches matched",
		slog.String("criteria", criteria.String()),
		slog.Int("count", len(speeches)),
	)

	return speeches, nil
}

// Create stores a new speech unless an identical one already exists.
func (s *SpeechService) Create(ctx context.Context, in domain.SpeechInput) (*domain.Speech, error) {
	if err := in.Validate(); err != nil {
		s.record("create", err)
		return nil, err
	}

	now := s.now().UTC()

	speech := &domain.Speech{CreatedAt: now, UpdatedAt: now}
	speech.Apply(in)

	err := s.repo.RunInTx(ctx, func(store ports.SpeechStore) error {
		if err := s.rejectDuplicate(ctx, store, speech, 0); err != nil {
			return err
		}

		return store.Insert(ctx, speech)
	})
	if err != nil {
		s.record("create", err)
		return nil, s.wrap("create speech", err)
	}

	s.record("create", nil)
	s.log(ctx).InfoContext(ctx, "speech created", slog.Int64("speech_id", speech.ID))

	return speech, nil
}

// Update replaces the content, author, date and keywords of an existing speech.
func (s *SpeechService) Update(ctx context.Context, id int64, in domain.SpeechInput) (*domain.Speech, error) {
	if err := in.Validate(); err != nil {
		s.record("update", err)
		return nil, err
	}

	var updated *domain.Speech

	err := s.repo.RunInTx(ctx, func(store ports.SpeechStore) error {
		speech, err := store.GetByID(ctx, id)
		if err != nil {
			return err
		}

		speech.Apply(in)
		speech.UpdatedAt = s.now().UTC()

		if err := s.rejectDuplicate(ctx, store, speech, id); err != nil {
			return err
		}

		if err := store.Update(ctx, speech); err != nil {
			return err
		}

		updated = speech

		return nil
	})
	if err != nil {
		s.record("update", err)

		if domain.IsNotFound(err) {
			s.log(ctx).WarnContext(ctx, "speech to update not found", slog.Int64("speech_id", id))
		}

		return nil, s.wrap(fmt.Sprintf("update speech %d", id), err)
	}

	s.record("update", nil)
	s.log(ctx).InfoContext(ctx, "speech updated", slog.Int64("speech_id", id))

	return updated, nil
}

// Delete removes an existing speech.
func (s *SpeechService) Delete(ctx context.Context, id int64) error {
	err := s.repo.RunInTx(ctx, func(store ports.SpeechStore) error {
		if _, err := store.GetByID(ctx, id); err != nil {
			return err
		}

		return store.Delete(ctx, id)
	})
	if err != nil {
		s.record("delete", err)

		if domain.IsNotFound(err) {
			s.log(ctx).WarnContext(ctx, "speech to delete not found", slog.Int64("speech_id", id))
		}

		return s.wrap(fmt.Sprintf("delete speech %d", id), err)
	}

	s.record("delete", nil)
	s.log(ctx).InfoContext(ctx, "speech deleted", slog.Int64("speech_id", id))

	return nil
}

func (s *SpeechService) rejectDuplicate(ctx context.Context, store ports.SpeechStore, speech *domain.Speech, excludeID int64) error {
	dup, err := store.ExistsDuplicate(ctx, speech, excludeID)
	if err != nil {
		return err
	}

	if dup {
		s.log(ctx).WarnContext(ctx, "duplicate speech rejected",
			slog.String("author", speech.Author),
			slog.Time("speech_date", speech.SpeechDate),
		)

		details := ""
		if excludeID != 0 {
			details = "id " + strconv.FormatInt(excludeID, 10)
		}

		return domain.NewConflictErrorWithDetails(speechEntity, duplicateReason, details)
	}

	return nil
}

// log prefers the request-scoped logger carried by ctx.
func (s *SpeechService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

// wrap passes domain errors through unchanged and adds context to everything else.
func (s *SpeechService) wrap(op string, err error) error {
	if domain.IsNotFound(err) || domain.IsConflict(err) || domain.IsValidation(err) {
		return err
	}

	return fmt.Errorf("%s: %w", op, err)
}

func (s *SpeechService) record(operation string, err error) {
	outcome := outcomeSuccess

	switch {
	case err == nil:
	case domain.IsNotFound(err):
		outcome = outcomeNotFound
	case domain.IsConflict(err):
		outcome = outcomeConflict
	case domain.IsValidation(err):
		outcome = outcomeInvalid
	default:
		outcome = outcomeError
	}

	s.operations.WithLabelValues(operation, outcome).Inc()
}
