package extraction

import (
	"math"
	"regexp"
	"strconv"

	"github.com/lifequest/lifequest-api/internal/domain"
)

// patternRule binds a verb-phrase regular expression to a category, a
// base EXP value and a duration sensitivity. Rules with a non-zero
// durationDivisor scale their base EXP by min(duration/divisor, multiplierCap)
// when the sentence carries a numeric duration.
type patternRule struct {
	re              *regexp.Regexp
	category        domain.ActivityCategory
	baseExp         int
	durationDivisor float64 // 0 means duration-insensitive
	multiplierCap   float64
}

// durationPhrase extracts a numeric "for N minutes/hours" duration from a
// sentence. The number is used as-is regardless of the unit word; the
// per-rule multiplier caps bound the effect.
var durationPhrase = regexp.MustCompile(`(?i)\bfor\s+(\d+)\s+(?:min(?:ute)?s?|hours?)\b`)

// patternRules is evaluated top to bottom; the first rule whose
// expression matches a sentence wins and later rules are not tried.
// Ordering is load-bearing: "went to the gym" must hit the habits rule
// before "went to" can hit the experiences rule.
var patternRules = []patternRule{
	{
		re:              regexp.MustCompile(`(?i)(?:ran|jogged|walked|exercised|worked out|went to the gym|did yoga|did pilates|meditated)\b`),
		category:        domain.CategoryHabits,
		baseExp:         10,
		durationDivisor: 15,
		multiplierCap:   3.0,
	},
	{
		re:              regexp.MustCompile(`(?i)(?:read|studied|learned|took a course|watched a tutorial)\b`),
		category:        domain.CategoryKnowledge,
		baseExp:         15,
		durationDivisor: 30,
		multiplierCap:   3.0,
	},
	{
		re:       regexp.MustCompile(`(?i)(?:budgeted|saved|invested|tracked expenses|reviewed finances|paid bills)`),
		category: domain.CategoryFinancial,
		baseExp:  15,
	},
	{
		re:              regexp.MustCompile(`(?i)(?:practiced|coded|programmed|developed|built|created|designed|wrote)\b`),
		category:        domain.CategorySkills,
		baseExp:         20,
		durationDivisor: 45,
		multiplierCap:   2.5,
	},
	{
		re:       regexp.MustCompile(`(?i)(?:visited|traveled to|explored|went to|attended|experienced)`),
		category: domain.CategoryExperiences,
		baseExp:  25,
	},
	{
		re:       regexp.MustCompile(`(?i)(?:met with|connected with|talked to|had a meeting with|networked with|contacted|emailed|called)`),
		category: domain.CategoryNetwork,
		baseExp:  15,
	},
}

// matchPattern tests a sentence against the ordered rule list.
// On a match it returns the extracted activity with the full trimmed
// sentence as the action; ok is false if no rule matches.
func matchPattern(sentence string) (ExtractedActivity, bool) {
	for _, rule := range patternRules {
		if !rule.re.MatchString(sentence) {
			continue
		}

		multiplier := 1.0
		if rule.durationDivisor > 0 {
			if duration, ok := parseDuration(sentence); ok {
				multiplier = math.Min(duration/rule.durationDivisor, rule.multiplierCap)
			}
		}

		exp := int(math.Round(float64(rule.baseExp) * multiplier))
		if exp > domain.MaxActivityExp {
			exp = domain.MaxActivityExp
		}

		return ExtractedActivity{
			Action:   sentence,
			Category: rule.category,
			ExpValue: exp,
		}, true
	}

	return ExtractedActivity{}, false
}

// parseDuration returns the numeric duration from the sentence, if any.
func parseDuration(sentence string) (float64, bool) {
	m := durationPhrase.FindStringSubmatch(sentence)
	if m == nil {
		return 0, false
	}

	duration, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	return float64(duration), true
}
