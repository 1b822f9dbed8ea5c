package services

import (
	"strings"

	"kindred_server/models"
)

// Score weights per matching factor
const (
	sharedInterestWeight   = 10
	relationshipGoalWeight = 30
	personalityTypeWeight  = 20
)

// NormalizeTerm trims surrounding whitespace and lowercases a term
func NormalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeInterestSet dedupes an interest list after normalization;
// entries that normalize to the empty string are dropped.
func normalizeInterestSet(interests []string) map[string]struct{} {
	set := make(map[string]struct{}, len(interests))
	for _, interest := range interests {
		if normalized := NormalizeTerm(interest); normalized != "" {
			set[normalized] = struct{}{}
		}
	}
	return set
}

// CompatibilityScore computes the match score between the current user and
// a candidate, from the current user's perspective. Pure function: 10 per
// shared interest, 30 for equal relationship goals, 20 for equal
// personality type, all compared after trim+lowercase. Absent fields
// contribute zero; a nil profile on either side scores zero.
func CompatibilityScore(current, candidate *models.UserProfile) int {
	if current == nil || candidate == nil {
		return 0
	}

	score := 0
	mine := normalizeInterestSet(current.Interests)
	for interest := range normalizeInterestSet(candidate.Interests) {
		if _, shared := mine[interest]; shared {
			score += sharedInterestWeight
		}
	}

	if fieldMatches(current.RelationshipGoals, candidate.RelationshipGoals) {
		score += relationshipGoalWeight
	}
	if fieldMatches(current.PersonalityType, candidate.PersonalityType) {
		score += personalityTypeWeight
	}
	return score
}

func fieldMatches(a, b string) bool {
	a, b = NormalizeTerm(a), NormalizeTerm(b)
	return a != "" && a == b
}
