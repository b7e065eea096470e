// Package extraction implements the activity extraction engine: a
// deterministic, rule-based pipeline that turns free-text journal prose
// into a list of classified, EXP-scored activities. Pattern rules get
// first chance at every sentence; a weighted keyword scorer is the
// fallback; sentences neither can classify are dropped.
package extraction

import (
	"github.com/lifequest/lifequest-api/internal/domain"
)

// ExtractedActivity is the transient (action, category, EXP) tuple the
// engine produces per classified sentence. The action is the verbatim
// trimmed source sentence, not just the matched substring.
type ExtractedActivity struct {
	Action   string
	Category domain.ActivityCategory
	ExpValue int
}

// Service defines the interface for the activity extraction engine.
type Service interface {
	// ExtractActivities turns raw journal text into a fully materialized,
	// sentence-ordered list of extracted activities. It is deterministic
	// and never fails: empty or unclassifiable text yields an empty slice.
	ExtractActivities(text string) []ExtractedActivity
}

// defaultService is the standard implementation of the Service interface.
// The engine holds no mutable state, so a single instance is safe to
// share across goroutines.
type defaultService struct{}

// NewDefaultService creates the extraction engine with the fixed
// hand-authored rule set.
func NewDefaultService() Service {
	return &defaultService{}
}

// ExtractActivities implements the Service interface.
func (s *defaultService) ExtractActivities(text string) []ExtractedActivity {
	sentences := SplitSentences(text)

	activities := make([]ExtractedActivity, 0, len(sentences))
	for _, sentence := range sentences {
		if activity, ok := matchPattern(sentence); ok {
			activities = append(activities, activity)
			continue
		}

		if category, score, ok := scoreByKeywords(sentence); ok {
			activities = append(activities, ExtractedActivity{
				Action:   sentence,
				Category: category,
				ExpValue: keywordExp(score),
			})
		}
	}

	return activities
}
