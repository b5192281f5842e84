package sqlstore

import (
	"strings"

	"github.com/jsamuelsen/speech-service/internal/domain"
)

// duplicatePredicate matches speeches with the same author, content, date and
// exact keyword set as candidate. Blank fields are not constrained.
// A non-zero excludeID removes that speech from consideration.
func duplicatePredicate(candidate *domain.Speech, excludeID int64, d dialect) predicate {
	var p predicate

	if strings.TrimSpace(candidate.Author) != "" {
		p.and(d.folded("s.author")+" = ?", foldArg(candidate.Author))
	}

	if strings.TrimSpace(candidate.Content) != "" {
		p.and(d.folded("s.content")+" = ?", foldArg(candidate.Content))
	}

	if !candidate.SpeechDate.IsZero() {
		p.and("s.speech_date = ?", d.timeArg(candidate.SpeechDate))
	}

	keywords := domain.NormalizeKeywords(candidate.Keywords)
	if len(keywords) > 0 {
		// Same cardinality plus every candidate keyword present means the sets are equal.
		p.and("(SELECT COUNT(*) FROM speech_keyword k WHERE k.speech_id = s.id) = ?", len(keywords))

		args := append(toArgs(keywords), len(keywords))
		p.and("(SELECT COUNT(DISTINCT k.keyword) FROM speech_keyword k WHERE k.speech_id = s.id AND k.keyword IN ("+
			placeholders(len(keywords))+")) = ?", args...)
	}

	if excludeID != 0 {
		p.and("s.id <> ?", excludeID)
	}

	return p
}
