package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Speech is a recorded speech with its author, date, and keywords.
// It has no knowledge of how it is stored or transported.
type Speech struct {
	// ID is assigned by the store on insert and never changes.
	ID int64

	// Content is the text of the speech.
	Content string

	// Author is who delivered the speech.
	Author string

	// Keywords is a normalized set: lowercase, trimmed, unique, sorted.
	Keywords []string

	// SpeechDate is when the speech was given, in the offset the caller supplied.
	SpeechDate time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SpeechInput carries the caller-provided fields for create and update.
type SpeechInput struct {
	Content    string
	Author     string
	Keywords   []string
	SpeechDate time.Time
}

// Validate checks the business rules for a speech input.
// It returns the first violation as a ValidationError.
func (in SpeechInput) Validate() error {
	switch {
	case strings.TrimSpace(in.Content) == "":
		return NewValidationError("content", "Content cannot be empty")
	case strings.TrimSpace(in.Author) == "":
		return NewValidationError("author", "Author cannot be empty")
	case len(NormalizeKeywords(in.Keywords)) == 0:
		return NewValidationError("keywords", "Keywords cannot be empty")
	case in.SpeechDate.IsZero():
		return NewValidationError("speechDate", "Speech date cannot be null")
	}

	return nil
}

// Apply copies the input onto s, normalizing keywords.
// ID and timestamps are left untouched.
func (s *Speech) Apply(in SpeechInput) {
	s.Content = in.Content
	s.Author = in.Author
	s.Keywords = NormalizeKeywords(in.Keywords)
	s.SpeechDate = in.SpeechDate
}

// NormalizeKeywords lowercases and trims every keyword, drops blanks,
// removes duplicates and sorts the result.
func NormalizeKeywords(keywords []string) []string {
	normalized := lo.FilterMap(keywords, func(k string, _ int) (string, bool) {
		k = strings.ToLower(strings.TrimSpace(k))
		return k, k != ""
	})

	normalized = lo.Uniq(normalized)
	slices.Sort(normalized)

	return normalized
}

// SearchCriteria holds the optional filters for a speech search.
// Zero values mean "no filter". The date range applies only when both bounds are set.
type SearchCriteria struct {
	Author    string
	Snippet   string
	StartDate *time.Time
	EndDate   *time.Time
	Keywords  []string
}

// HasDateRange reports whether both date bounds are present.
func (c SearchCriteria) HasDateRange() bool {
	return c.StartDate != nil && c.EndDate != nil
}

// Normalized returns a copy with trimmed text filters and normalized keywords.
func (c SearchCriteria) Normalized() SearchCriteria {
	return SearchCriteria{
		Author:    strings.TrimSpace(c.Author),
		Snippet:   strings.TrimSpace(c.Snippet),
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		Keywords:  NormalizeKeywords(c.Keywords),
	}
}

// IsEmpty reports whether no filter is set.
func (c SearchCriteria) IsEmpty() bool {
	n := c.Normalized()
	return n.Author == "" && n.Snippet == "" && len(n.Keywords) == 0 && !n.HasDateRange()
}

// String renders the active filters for logs.
func (c SearchCriteria) String() string {
	n := c.Normalized()

	var parts []string
	if n.Author != "" {
		parts = append(parts, "author="+n.Author)
	}

	if n.Snippet != "" {
		parts = append(parts, "snippet="+n.Snippet)
	}

	if len(n.Keywords) > 0 {
		parts = append(parts, "keywords="+strings.Join(n.Keywords, ","))
	}

	if n.HasDateRange() {
		parts = append(parts, "date="+n.StartDate.Format(time.RFC3339)+".."+n.EndDate.Format(time.RFC3339))
	}

	if len(parts) == 0 {
		return "(none)"
	}

	return strings.Join(parts, " ")
}
