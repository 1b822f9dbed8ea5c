package models

// PairMatch is the single record kept per unordered pair of users.
// UserA is always the lexicographically smaller id, so PairID is the
// natural unique key for the pair no matter who liked first.
type PairMatch struct {
	PairID    string   `dynamodbav:"pairId" json:"pairId"`
	UserA     string   `dynamodbav:"userA" json:"userA"`
	UserB     string   `dynamodbav:"userB" json:"userB"`
	LikedBy   []string `dynamodbav:"likedBy,stringset,omitempty" json:"likedBy"`
	Status    string   `dynamodbav:"status" json:"status"`
	CreatedAt string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt string   `dynamodbav:"updatedAt" json:"updatedAt"`
}

// OtherParticipant returns the pair member that is not userID
func (m PairMatch) OtherParticipant(userID string) string {
	if m.UserA == userID {
		return m.UserB
	}
	return m.UserA
}

// HasLiked reports whether userID is recorded in the likedBy set
func (m PairMatch) HasLiked(userID string) bool {
	for _, id := range m.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// PairMatchesTable is the DynamoDB table name for pair records
const PairMatchesTable = "PairMatches"

// GSIs used to find all pairs a user participates in
const (
	UserAIndex = "userA-index"
	UserBIndex = "userB-index"
)
