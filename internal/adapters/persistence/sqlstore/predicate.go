package sqlstore

import (
	"strings"

	"github.com/jsamuelsen/speech-service/internal/domain"
)

// predicate is a conjunction of SQL clauses with "?" placeholders.
type predicate struct {
	clauses []string
	args    []any
}

// and appends a clause and its arguments.
func (p *predicate) and(clause string, args ...any) {
	p.clauses = append(p.clauses, clause)
	p.args = append(p.args, args...)
}

// empty reports whether no clause has been added.
func (p *predicate) empty() bool {
	return len(p.clauses) == 0
}

// where renders " WHERE a AND b", or "" when the predicate is empty.
func (p *predicate) where() string {
	if p.empty() {
		return ""
	}

	return " WHERE " + strings.Join(p.clauses, " AND ")
}

// placeholders returns "?, ?, ..." with n entries.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat("?, ", n-1) + "?"
}

// toArgs widens a string slice for use as query arguments.
func toArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}

	return args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern that matches s literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// searchPredicate translates search criteria into a predicate over "speech s".
// Absent filters contribute nothing; a date range needs both bounds.
func searchPredicate(criteria domain.SearchCriteria, d dialect) predicate {
	c := criteria.Normalized()

	var p predicate

	if c.Author != "" {
		p.and(d.folded("s.author")+" = ?", foldArg(c.Author))
	}

	if c.Snippet != "" {
		p.and(d.folded("s.content")+` LIKE ? ESCAPE '\'`, containsPattern(foldArg(c.Snippet)))
	}

	if len(c.Keywords) > 0 {
		p.and("EXISTS (SELECT 1 FROM speech_keyword k WHERE k.speech_id = s.id AND k.keyword IN ("+
			placeholders(len(c.Keywords))+"))", toArgs(c.Keywords)...)
	}

	if c.HasDateRange() {
		p.and("s.speech_date BETWEEN ? AND ?", d.timeArg(*c.StartDate), d.timeArg(*c.EndDate))
	}

	return p
}
