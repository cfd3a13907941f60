package questions

import (
	"encoding/json"
	"fmt"

	"github.com/athletemind/journal-backend/internal/domain"
)

// CurrentVersion is the version stamped on every persisted question set.
const CurrentVersion = 3

// migration is a single versioned transform over a question list.
// Applying it brings a document from any version below migration.version
// up to migration.version.
type migration struct {
	version int
	apply   func([]domain.Question) []domain.Question
}

// migrations lists all transforms in ascending version order.
// A stored document at version N gets every step with version > N.
var migrations = []migration{
	{
		// v1 -> v2: reword question 9. Only the exact legacy text is
		// rewritten so user edits survive.
		version: 2,
		apply: rewriteText("9",
			"How'd you feel playing against the player you were matched up against?",
			"How did I feel playing against the player I was matched up against?"),
	},
	{
		// v2 -> v3: reword question 10.
		version: 3,
		apply: rewriteText("10",
			"How'd you feel in your team's system against the system you were against?",
			"How'd I feel in my team's system against the system we were up against?"),
	},
}

// rewriteText returns a transform that replaces the text of the question with
// the given id, guarded on the old text matching exactly.
func rewriteText(id, from, to string) func([]domain.Question) []domain.Question {
	return func(qs []domain.Question) []domain.Question {
		out := make([]domain.Question, len(qs))
		for i, q := range qs {
			if q.ID == id && q.Text == from {
				q.Text = to
			}
			out[i] = q
		}
		return out
	}
}

// Migrate brings a stored question set up to CurrentVersion.
// It never fails: unknown fields pass through untouched and a set already at
// or above CurrentVersion is returned as-is.
func Migrate(set domain.QuestionSet) domain.QuestionSet {
	version := set.Version
	if version == 0 {
		version = 1
	}

	qs := set.Questions
	for _, m := range migrations {
		if version < m.version {
			qs = m.apply(qs)
			version = m.version
		}
	}

	return domain.QuestionSet{Version: version, Questions: qs}
}

// Envelope wraps a question list in a versioned envelope stamped with
// CurrentVersion, ready for persistence.
func Envelope(qs []domain.Question) domain.QuestionSet {
	return domain.QuestionSet{Version: CurrentVersion, Questions: qs}
}

// ParseStored decodes a persisted question document. Both the versioned
// envelope and the legacy bare-array form (implicit version 1) are accepted.
func ParseStored(raw []byte) (domain.QuestionSet, error) {
	var set domain.QuestionSet
	if err := json.Unmarshal(raw, &set); err == nil && set.Questions != nil {
		return set, nil
	}

	var legacy []domain.Question
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return domain.QuestionSet{}, fmt.Errorf("parse stored questions: %w", err)
	}

	return domain.QuestionSet{Version: 1, Questions: legacy}, nil
}

// Normalize repairs drifted question documents in place of rejecting them:
// a section other than pregame/postgame is coerced to postgame and a missing
// type defaults to "text".
func Normalize(qs []domain.Question) []domain.Question {
	out := make([]domain.Question, len(qs))
	for i, q := range qs {
		if !q.Section.IsValid() {
			q.Section = domain.SectionPostgame
		}
		if q.Type == "" {
			q.Type = "text"
		}
		out[i] = q
	}
	return out
}
