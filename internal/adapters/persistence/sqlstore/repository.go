package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jsamuelsen/speech-service/internal/domain"
	"github.com/jsamuelsen/speech-service/internal/ports"
)

// Compile-time contract assertions.
var (
	_ ports.SpeechRepository = (*Repository)(nil)
	_ ports.SpeechStore      = (*speechStore)(nil)
	_ ports.HealthChecker    = (*DB)(nil)
)

const speechEntity = "speech"

const selectSpeeches = `SELECT s.id, s.content, s.author, s.speech_date, s.speech_date_offset,
	s.created_at, s.updated_at, sk.keyword
FROM speech s
LEFT JOIN speech_keyword sk ON sk.speech_id = s.id`

const orderSpeeches = " ORDER BY s.id, sk.keyword"

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// speechStore implements ports.SpeechStore on top of a pool or a transaction.
type speechStore struct {
	q querier
	d dialect
}

// Repository is the pool-backed speech repository.
type Repository struct {
	speechStore

	db *DB
}

// NewRepository creates a repository on an open database.
func NewRepository(db *DB) *Repository {
	return &Repository{
		speechStore: speechStore{q: db.sql, d: db.dialect},
		db:          db,
	}
}

// RunInTx runs fn against a store bound to a new transaction.
// The transaction is committed when fn succeeds and rolled back otherwise.
func (r *Repository) RunInTx(ctx context.Context, fn func(store ports.SpeechStore) error) (retErr error) {
	tx, err := r.db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if err := fn(&speechStore{q: tx, d: r.db.dialect}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// List returns all speeches ordered by id.
func (s *speechStore) List(ctx context.Context) ([]domain.Speech, error) {
	return s.query(ctx, predicate{})
}

// GetByID returns one speech or a NotFoundError.
func (s *speechStore) GetByID(ctx context.Context, id int64) (*domain.Speech, error) {
	var p predicate
	p.and("s.id = ?", id)

	speeches, err := s.query(ctx, p)
	if err != nil {
		return nil, err
	}

	if len(speeches) == 0 {
		return nil, domain.NewNotFoundError(speechEntity, strconv.FormatInt(id, 10))
	}

	return &speeches[0], nil
}

// Search returns speeches matching criteria. No filters match everything.
func (s *speechStore) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Speech, error) {
	return s.query(ctx, searchPredicate(criteria, s.d))
}

// ExistsDuplicate reports whether a speech equal to candidate is already stored.
func (s *speechStore) ExistsDuplicate(ctx context.Context, candidate *domain.Speech, excludeID int64) (bool, error) {
	p := duplicatePredicate(candidate, excludeID, s.d)

	var one int

	err := s.q.QueryRowContext(ctx, s.d.rebind("SELECT 1 FROM speech s"+p.where()+" LIMIT 1"), p.args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("check duplicate speech: %w", err)
	}

	return true, nil
}

// Insert stores a new speech and its keywords, setting speech.ID.
func (s *speechStore) Insert(ctx context.Context, speech *domain.Speech) error {
	query := s.d.rebind(`INSERT INTO speech (content, author, speech_date, speech_date_offset, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)

	err := s.q.QueryRowContext(ctx, query,
		speech.Content,
		speech.Author,
		s.d.timeArg(speech.SpeechDate),
		zoneOffset(speech.SpeechDate),
		s.d.timeArg(speech.CreatedAt),
		s.d.timeArg(speech.UpdatedAt),
	).Scan(&speech.ID)
	if err != nil {
		return fmt.Errorf("insert speech: %w", err)
	}

	return s.insertKeywords(ctx, speech.ID, speech.Keywords)
}

// Update replaces the stored fields and keywords of an existing speech.
func (s *speechStore) Update(ctx context.Context, speech *domain.Speech) error {
	query := s.d.rebind(`UPDATE speech
SET content = ?, author = ?, speech_date = ?, speech_date_offset = ?, updated_at = ?
WHERE id = ?`)

	res, err := s.q.ExecContext(ctx, query,
		speech.Content,
		speech.Author,
		s.d.timeArg(speech.SpeechDate),
		zoneOffset(speech.SpeechDate),
		s.d.timeArg(speech.UpdatedAt),
		speech.ID,
	)
	if err != nil {
		return fmt.Errorf("update speech %d: %w", speech.ID, err)
	}

	if err := requireAffected(res, speech.ID); err != nil {
		return err
	}

	if err := s.deleteKeywords(ctx, speech.ID); err != nil {
		return err
	}

	return s.insertKeywords(ctx, speech.ID, speech.Keywords)
}

// Delete removes a speech and its keywords.
func (s *speechStore) Delete(ctx context.Context, id int64) error {
	if err := s.deleteKeywords(ctx, id); err != nil {
		return err
	}

	res, err := s.q.ExecContext(ctx, s.d.rebind("DELETE FROM speech WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("delete speech %d: %w", id, err)
	}

	return requireAffected(res, id)
}

func (s *speechStore) insertKeywords(ctx context.Context, id int64, keywords []string) error {
	query := s.d.rebind("INSERT INTO speech_keyword (speech_id, keyword) VALUES (?, ?)")

	for _, kw := range domain.NormalizeKeywords(keywords) {
		if _, err := s.q.ExecContext(ctx, query, id, kw); err != nil {
			return fmt.Errorf("insert keyword %q for speech %d: %w", kw, id, err)
		}
	}

	return nil
}

func (s *speechStore) deleteKeywords(ctx context.Context, id int64) error {
	if _, err := s.q.ExecContext(ctx, s.d.rebind("DELETE FROM speech_keyword WHERE speech_id = ?"), id); err != nil {
		return fmt.Errorf("delete keywords for speech %d: %w", id, err)
	}

	return nil
}

// query reads the speeches matching p with their keywords, one row per keyword.
// Rows are fully drained before returning so the connection is free for the next statement.
func (s *speechStore) query(ctx context.Context, p predicate) ([]domain.Speech, error) {
	rows, err := s.q.QueryContext(ctx, s.d.rebind(selectSpeeches+p.where()+orderSpeeches), p.args...)
	if err != nil {
		return nil, fmt.Errorf("query speeches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	speeches := make([]domain.Speech, 0)

	for rows.Next() {
		var (
			id                              int64
			content, author                 string
			speechDate, createdAt, updateAt timeValue
			offset                          int
			keyword                         sql.NullString
		)

		if err := rows.Scan(&id, &content, &author, &speechDate, &offset, &createdAt, &updateAt, &keyword); err != nil {
			return nil, fmt.Errorf("scan speech: %w", err)
		}

		if n := len(speeches); n == 0 || speeches[n-1].ID != id {
			speeches = append(speeches, domain.Speech{
				ID:         id,
				Content:    content,
				Author:     author,
				Keywords:   []string{},
				SpeechDate: inZone(speechDate.Time, offset),
				CreatedAt:  createdAt.Time,
				UpdatedAt:  updateAt.Time,
			})
		}

		if keyword.Valid {
			last := &speeches[len(speeches)-1]
			last.Keywords = append(last.Keywords, keyword.String)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate speeches: %w", err)
	}

	return speeches, nil
}

func requireAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if n == 0 {
		return domain.NewNotFoundError(speechEntity, strconv.FormatInt(id, 10))
	}

	return nil
}
