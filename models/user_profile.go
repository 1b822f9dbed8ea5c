package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID            string   `dynamodbav:"userId" json:"userId"`
	FullName          string   `dynamodbav:"fullName,omitempty" json:"fullName,omitempty"`
	Gender            string   `dynamodbav:"gender,omitempty" json:"gender,omitempty"`
	Preference        string   `dynamodbav:"preference,omitempty" json:"preference,omitempty"`
	Interests         []string `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	RelationshipGoals string   `dynamodbav:"relationshipGoals,omitempty" json:"relationshipGoals,omitempty"`
	PersonalityType   string   `dynamodbav:"personalityType,omitempty" json:"personalityType,omitempty"`
	Education         string   `dynamodbav:"education,omitempty" json:"education,omitempty"`
	Blocked           []string `dynamodbav:"blocked,stringset,omitempty" json:"blocked,omitempty"`
	IsProfileVisible  bool     `dynamodbav:"isProfileVisible" json:"isProfileVisible"`
	Photos            []string `dynamodbav:"photos,omitempty" json:"photos,omitempty"`
	LastActiveAt      string   `dynamodbav:"lastActiveAt,omitempty" json:"lastActiveAt,omitempty"`
	Latitude          float64  `dynamodbav:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude         float64  `dynamodbav:"longitude,omitempty" json:"longitude,omitempty"`
}

// CandidateProfile is the subset of profile fields shown to other users.
// The blocked set and location coordinates never leave the directory.
type CandidateProfile struct {
	UserID            string   `json:"userId"`
	FullName          string   `json:"fullName,omitempty"`
	Gender            string   `json:"gender,omitempty"`
	Interests         []string `json:"interests,omitempty"`
	RelationshipGoals string   `json:"relationshipGoals,omitempty"`
	PersonalityType   string   `json:"personalityType,omitempty"`
	Education         string   `json:"education,omitempty"`
	Photos            []string `json:"photos,omitempty"`
	LastActiveAt      string   `json:"lastActiveAt,omitempty"`
}

// Candidate returns the public view of a profile
func (p UserProfile) Candidate() CandidateProfile {
	return CandidateProfile{
		UserID:            p.UserID,
		FullName:          p.FullName,
		Gender:            p.Gender,
		Interests:         p.Interests,
		RelationshipGoals: p.RelationshipGoals,
		PersonalityType:   p.PersonalityType,
		Education:         p.Education,
		Photos:            p.Photos,
		LastActiveAt:      p.LastActiveAt,
	}
}

// HasBlocked reports whether the profile's blocked set contains userID
func (p UserProfile) HasBlocked(userID string) bool {
	for _, id := range p.Blocked {
		if id == userID {
			return true
		}
	}
	return false
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
