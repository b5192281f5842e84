package dto

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/jsamuelsen/speech-service/internal/domain"
)

// SpeechFields are the client-supplied fields shared by create and update requests.
type SpeechFields struct {
	Content    string     `json:"content" validate:"required,notblank"`
	Author     string     `json:"author" validate:"required,notblank"`
	Keywords   []string   `json:"keywords" validate:"required,min=1,dive,notblank"`
	SpeechDate *time.Time `json:"speechDate" validate:"required"`
}

// ToInput converts the request fields to the domain input.
// Speech dates keep whole seconds, the precision they are rendered with.
func (f SpeechFields) ToInput() domain.SpeechInput {
	in := domain.SpeechInput{
		Content:  f.Content,
		Author:   f.Author,
		Keywords: f.Keywords,
	}

	if f.SpeechDate != nil {
		in.SpeechDate = f.SpeechDate.Truncate(time.Second)
	}

	return in
}

// CreateSpeechRequest is the body of POST /speeches.
type CreateSpeechRequest struct {
	SpeechFields
}

// UpdateSpeechRequest is the body of PUT /speeches/:id.
// ID must repeat the id in the path.
type UpdateSpeechRequest struct {
	ID *int64 `json:"id" validate:"required"`
	SpeechFields
}

// SpeechResponse is the JSON representation of a speech.
type SpeechResponse struct {
	ID         int64    `json:"id"`
	Content    string   `json:"content"`
	Author     string   `json:"author"`
	Keywords   []string `json:"keywords"`
	SpeechDate string   `json:"speechDate"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

// NewSpeechResponse converts a domain speech to its JSON representation.
// The speech date keeps its offset; audit timestamps are rendered in UTC.
func NewSpeechResponse(s *domain.Speech) *SpeechResponse {
	keywords := s.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	return &SpeechResponse{
		ID:         s.ID,
		Content:    s.Content,
		Author:     s.Author,
		Keywords:   keywords,
		SpeechDate: s.SpeechDate.Format(time.RFC3339),
		CreatedAt:  s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// NewSpeechResponses converts a list of speeches.
func NewSpeechResponses(speeches []domain.Speech) []*SpeechResponse {
	return lo.Map(speeches, func(s domain.Speech, _ int) *SpeechResponse {
		return NewSpeechResponse(&s)
	})
}

// SearchQuery holds the query parameters of GET /speeches/search.
// Keywords may be repeated (?keywords=a&keywords=b) or comma separated (?keywords=a,b).
type SearchQuery struct {
	Author    string   `form:"author"`
	Snippet   string   `form:"snippet"`
	StartDate string   `form:"startDate"`
	EndDate   string   `form:"endDate"`
	Keywords  []string `form:"keywords"`

	start *time.Time
	end   *time.Time
}

// Validate parses the date bounds. It implements Validatable.
func (q *SearchQuery) Validate() error {
	var err error

	if q.start, err = parseDateParam("startDate", q.StartDate); err != nil {
		return err
	}

	if q.end, err = parseDateParam("endDate", q.EndDate); err != nil {
		return err
	}

	return nil
}

// Criteria converts the query to domain search criteria. Call Validate first.
func (q *SearchQuery) Criteria() domain.SearchCriteria {
	keywords := lo.FlatMap(q.Keywords, func(k string, _ int) []string {
		return strings.Split(k, ",")
	})

	return domain.SearchCriteria{
		Author:    q.Author,
		Snippet:   q.Snippet,
		StartDate: q.start,
		EndDate:   q.end,
		Keywords:  keywords,
	}
}

func parseDateParam(name, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, domain.NewValidationErrorWithValue(name,
			"must be an RFC 3339 timestamp, e.g. 2023-01-01T00:00:00Z", value)
	}

	return &t, nil
}
