package models

// CandidateFilters are the optional narrowing filters for the candidate
// feed. Interests is the raw comma-separated list as supplied by the
// client; empty fields are ignored.
type CandidateFilters struct {
	Education         string
	RelationshipGoals string
	Interests         string
	PersonalityType   string
}

// ScoredCandidate pairs a candidate profile with its compatibility score
type ScoredCandidate struct {
	User       CandidateProfile `json:"user"`
	MatchScore int              `json:"matchScore"`
}

// CandidatePage is one page of the ranked candidate feed
type CandidatePage struct {
	Matches      []ScoredCandidate `json:"matches"`
	CurrentPage  int               `json:"currentPage"`
	TotalPages   int               `json:"totalPages"`
	TotalMatches int               `json:"totalMatches"`
}
