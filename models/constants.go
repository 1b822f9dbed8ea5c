package models

// Pair statuses
const (
	MatchStatusPending   = "pending"
	MatchStatusMatched   = "matched"
	MatchStatusUnmatched = "unmatched"
)

// Pagination defaults for the candidate feed
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)
