// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never driver rows or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/speech-service/internal/domain"
)

// SpeechStore is the persistence contract for speeches.
// Implementations are bound either to a connection pool or to a single transaction.
type SpeechStore interface {
	// List returns every speech ordered by id. An empty store yields an empty slice.
	List(ctx context.Context) ([]domain.Speech, error)

	// GetByID returns the speech with the given id.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Speech, error)

	// Search returns the speeches matching every present filter of criteria.
	// Keyword filters are compared in lowercase; a single date bound is ignored.
	Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Speech, error)

	// ExistsDuplicate reports whether another speech has the same author, content,
	// date and exact keyword set as candidate. excludeID (when non-zero) is skipped.
	ExistsDuplicate(ctx context.Context, candidate *domain.Speech, excludeID int64) (bool, error)

	// Insert stores speech with its keywords and sets speech.ID.
	Insert(ctx context.Context, speech *domain.Speech) error

	// Update replaces the stored fields and keyword set of speech.
	// Returns domain.ErrNotFound if no row has speech.ID.
	Update(ctx context.Context, speech *domain.Speech) error

	// Delete removes the speech and its keywords.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// SpeechRepository is a SpeechStore that can run a unit of work in a transaction.
type SpeechRepository interface {
	SpeechStore

	// RunInTx calls fn with a store bound to a new transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	RunInTx(ctx context.Context, fn func(store SpeechStore) error) error
}
