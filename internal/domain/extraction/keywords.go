package extraction

import (
	"strings"

	"github.com/lifequest/lifequest-api/internal/domain"
)

// Keyword scoring constants: the minimum winning score for a sentence
// to be classified at all, the EXP granted per score point, and the cap
// on keyword-scored EXP.
const (
	minKeywordScore  = 2
	expPerScorePoint = 3
	maxKeywordExp    = 20
)

// weightedKeyword is a hand-tuned (word, weight) pair; weights run 1-3.
type weightedKeyword struct {
	word   string
	weight int
}

// categoryKeywords holds one keyword set per category, in category
// declaration order. The scorer iterates this slice (not a map) so that
// ties resolve deterministically toward the earlier category.
var categoryKeywords = []struct {
	category domain.ActivityCategory
	keywords []weightedKeyword
}{
	{domain.CategoryFinancial, []weightedKeyword{
		{"money", 2},
		{"budget", 3},
		{"finance", 3},
		{"invest", 3},
		{"save", 2},
		{"expense", 2},
		{"bill", 1},
		{"income", 2},
	}},
	{domain.CategoryHabits, []weightedKeyword{
		{"exercise", 3},
		{"workout", 3},
		{"gym", 2},
		{"habit", 3},
		{"routine", 2},
		{"meditate", 3},
		{"sleep", 2},
		{"healthy", 2},
	}},
	{domain.CategoryKnowledge, []weightedKeyword{
		{"learn", 3},
		{"read", 2},
		{"study", 3},
		{"book", 2},
		{"course", 3},
		{"research", 3},
		{"article", 1},
		{"tutorial", 2},
	}},
	{domain.CategorySkills, []weightedKeyword{
		{"practice", 3},
		{"code", 3},
		{"develop", 2},
		{"create", 2},
		{"build", 2},
		{"skill", 3},
		{"project", 2},
		{"program", 3},
	}},
	{domain.CategoryExperiences, []weightedKeyword{
		{"travel", 3},
		{"visit", 2},
		{"explore", 3},
		{"adventure", 3},
		{"try", 1},
		{"experience", 3},
		{"event", 2},
		{"new", 1},
	}},
	{domain.CategoryNetwork, []weightedKeyword{
		{"meet", 2},
		{"connection", 3},
		{"friend", 2},
		{"network", 3},
		{"social", 2},
		{"contact", 2},
		{"colleague", 2},
		{"conversation", 2},
	}},
}

// scoreByKeywords is the fallback classifier for sentences no pattern
// rule matched. Matching is lower-cased substring containment, not
// word-boundary tokenization: "reading" matches "read". This imprecision
// is deliberate and load-bearing; upgrading to tokenized matching would
// change classification behavior.
//
// The winning category must score strictly higher than every earlier
// category (a later equal score does not displace the leader) and at
// least minKeywordScore, otherwise ok is false and the sentence is
// treated as unclassifiable.
func scoreByKeywords(sentence string) (category domain.ActivityCategory, score int, ok bool) {
	lower := strings.ToLower(sentence)

	var best domain.ActivityCategory
	bestScore := 0

	for _, set := range categoryKeywords {
		total := 0
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw.word) {
				total += kw.weight
			}
		}

		if total > bestScore {
			bestScore = total
			best = set.category
		}
	}

	if bestScore < minKeywordScore {
		return "", 0, false
	}

	return best, bestScore, true
}

// keywordExp converts a keyword score into an EXP value.
func keywordExp(score int) int {
	exp := score * expPerScorePoint
	if exp > maxKeywordExp {
		return maxKeywordExp
	}
	return exp
}
