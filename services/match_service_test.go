package services

import (
	"context"
	"fmt"
	"testing"

	"kindred_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDirectory is an in-memory ProfileDirectory
type fakeDirectory struct {
	profiles map[string]*models.UserProfile
	blocks   [][2]string
	unblocks [][2]string
}

func (f *fakeDirectory) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("profile %s: %w", userID, ErrNotFound)
	}
	return profile, nil
}

func (f *fakeDirectory) ScanEligibleProfiles(ctx context.Context, gender string, filters models.CandidateFilters) ([]models.UserProfile, error) {
	var out []models.UserProfile
	for _, p := range f.profiles {
		if p.Gender != gender || !p.IsProfileVisible {
			continue
		}
		if filters.Education != "" && p.Education != filters.Education {
			continue
		}
		if filters.RelationshipGoals != "" && p.RelationshipGoals != filters.RelationshipGoals {
			continue
		}
		if filters.PersonalityType != "" && p.PersonalityType != filters.PersonalityType {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeDirectory) AddBlocked(ctx context.Context, userID, targetID string) error {
	f.blocks = append(f.blocks, [2]string{userID, targetID})
	profile := f.profiles[userID]
	profile.Blocked = append(profile.Blocked, targetID)
	return nil
}

func (f *fakeDirectory) RemoveBlocked(ctx context.Context, userID, targetID string) error {
	f.unblocks = append(f.unblocks, [2]string{userID, targetID})
	return nil
}

// fakePairStore records calls and replays canned pairs
type fakePairStore struct {
	likes   [][2]string
	resets  [][2]string
	matched []models.PairMatch
	likeErr error
}

func (f *fakePairStore) Like(ctx context.Context, userID, targetID string) (*models.PairMatch, error) {
	if f.likeErr != nil {
		return nil, f.likeErr
	}
	f.likes = append(f.likes, [2]string{userID, targetID})
	userA, userB, pairID := CanonicalPair(userID, targetID)
	return &models.PairMatch{
		PairID:  pairID,
		UserA:   userA,
		UserB:   userB,
		LikedBy: []string{userID},
		Status:  models.MatchStatusPending,
	}, nil
}

func (f *fakePairStore) ResetPair(ctx context.Context, userID, targetID string) error {
	f.resets = append(f.resets, [2]string{userID, targetID})
	return nil
}

func (f *fakePairStore) MatchedPairsFor(ctx context.Context, userID string) ([]models.PairMatch, error) {
	return f.matched, nil
}

func seedDirectory() *fakeDirectory {
	return &fakeDirectory{profiles: map[string]*models.UserProfile{
		"me": {
			UserID:            "me",
			Gender:            "female",
			Preference:        "male",
			Interests:         []string{"hiking", "coffee"},
			RelationshipGoals: "serious",
			IsProfileVisible:  true,
		},
		"adam": {
			UserID:            "adam",
			Gender:            "male",
			Interests:         []string{"hiking", "coffee"},
			RelationshipGoals: "serious",
			IsProfileVisible:  true,
		},
		"ben": {
			UserID:           "ben",
			Gender:           "male",
			Interests:        []string{"hiking"},
			IsProfileVisible: true,
		},
		"carl": {
			UserID:           "carl",
			Gender:           "male",
			IsProfileVisible: true,
		},
		"dan": {
			UserID:           "dan",
			Gender:           "male",
			IsProfileVisible: false,
		},
		"eve": {
			UserID:           "eve",
			Gender:           "female",
			Preference:       "male",
			IsProfileVisible: true,
		},
	}}
}

func newMatchService() (*MatchService, *fakeDirectory, *fakePairStore) {
	directory := seedDirectory()
	pairs := &fakePairStore{}
	return &MatchService{Profiles: directory, Pairs: pairs}, directory, pairs
}

func TestGetCandidates(t *testing.T) {
	t.Run("RankedByScoreDescending", func(t *testing.T) {
		ms, _, _ := newMatchService()

		page, err := ms.GetCandidates(context.Background(), "me", models.CandidateFilters{}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalMatches)
		assert.Equal(t, 1, page.TotalPages)
		require.Len(t, page.Matches, 3)
		// adam: 2x10 interests + 30 goals; ben: 10; carl: 0
		assert.Equal(t, "adam", page.Matches[0].User.UserID)
		assert.Equal(t, 50, page.Matches[0].MatchScore)
		assert.Equal(t, "ben", page.Matches[1].User.UserID)
		assert.Equal(t, 10, page.Matches[1].MatchScore)
		assert.Equal(t, "carl", page.Matches[2].User.UserID)
		assert.Equal(t, 0, page.Matches[2].MatchScore)
	})

	t.Run("ExcludesBlockedEitherDirection", func(t *testing.T) {
		ms, directory, _ := newMatchService()
		directory.profiles["me"].Blocked = []string{"adam"}
		directory.profiles["ben"].Blocked = []string{"me"}

		page, err := ms.GetCandidates(context.Background(), "me", models.CandidateFilters{}, 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Matches, 1)
		assert.Equal(t, "carl", page.Matches[0].User.UserID)
	})

	t.Run("ExcludesHiddenProfilesAndWrongGender", func(t *testing.T) {
		ms, _, _ := newMatchService()

		page, err := ms.GetCandidates(context.Background(), "me", models.CandidateFilters{}, 1, 10)
		require.NoError(t, err)
		for _, match := range page.Matches {
			assert.NotEqual(t, "dan", match.User.UserID)
			assert.NotEqual(t, "eve", match.User.UserID)
			assert.NotEqual(t, "me", match.User.UserID)
		}
	})

	t.Run("InterestFilterIsRawMembership", func(t *testing.T) {
		ms, _, _ := newMatchService()

		// Raw, case-sensitive membership: "Hiking" matches nobody
		page, err := ms.GetCandidates(context.Background(), "me", models.CandidateFilters{Interests: "Hiking"}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 0, page.TotalMatches)

		page, err = ms.GetCandidates(context.Background(), "me", models.CandidateFilters{Interests: " hiking , "}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalMatches)
	})

	t.Run("SoftFiltersNarrow", func(t *testing.T) {
		ms, _, _ := newMatchService()

		page, err := ms.GetCandidates(context.Background(), "me", models.CandidateFilters{RelationshipGoals: "serious"}, 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Matches, 1)
		assert.Equal(t, "adam", page.Matches[0].User.UserID)
	})

	t.Run("PaginationTotalsAndClamping", func(t *testing.T) {
		ms, _, _ := newMatchService()

		page, err := ms.GetCandidates(context.Background(), "me", models.CandidateFilters{}, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalMatches)
		assert.Equal(t, 2, page.TotalPages)
		assert.Len(t, page.Matches, 2)

		page, err = ms.GetCandidates(context.Background(), "me", models.CandidateFilters{}, 2, 2)
		require.NoError(t, err)
		assert.Len(t, page.Matches, 1)

		page, err = ms.GetCandidates(context.Background(), "me", models.CandidateFilters{}, 5, 2)
		require.NoError(t, err)
		assert.Len(t, page.Matches, 0)
		assert.Equal(t, 5, page.CurrentPage)
	})

	t.Run("NonPositivePagingFallsBackToDefaults", func(t *testing.T) {
		ms, _, _ := newMatchService()

		page, err := ms.GetCandidates(context.Background(), "me", models.CandidateFilters{}, 0, -3)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultPage, page.CurrentPage)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("UnknownRequesterIsNotFound", func(t *testing.T) {
		ms, _, _ := newMatchService()

		_, err := ms.GetCandidates(context.Background(), "ghost", models.CandidateFilters{}, 1, 10)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("CandidateViewOmitsBlockedSet", func(t *testing.T) {
		ms, directory, _ := newMatchService()
		directory.profiles["adam"].Blocked = []string{"someone-else"}

		page, err := ms.GetCandidates(context.Background(), "me", models.CandidateFilters{}, 1, 10)
		require.NoError(t, err)
		// CandidateProfile carries no blocked field at all; spot-check the id
		assert.Equal(t, "adam", page.Matches[0].User.UserID)
	})
}

func TestLikeValidation(t *testing.T) {
	t.Run("SelfLikeRejected", func(t *testing.T) {
		ms, _, pairs := newMatchService()

		_, err := ms.Like(context.Background(), "me", "me")
		assert.ErrorIs(t, err, ErrInvalidRequest)
		assert.Empty(t, pairs.likes)
	})

	t.Run("UnknownTargetRejected", func(t *testing.T) {
		ms, _, pairs := newMatchService()

		_, err := ms.Like(context.Background(), "me", "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, pairs.likes)
	})

	t.Run("BlockedEitherDirectionForbidden", func(t *testing.T) {
		ms, directory, pairs := newMatchService()
		directory.profiles["me"].Blocked = []string{"adam"}

		_, err := ms.Like(context.Background(), "me", "adam")
		assert.ErrorIs(t, err, ErrForbidden)

		directory.profiles["me"].Blocked = nil
		directory.profiles["adam"].Blocked = []string{"me"}
		_, err = ms.Like(context.Background(), "me", "adam")
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Empty(t, pairs.likes)
	})

	t.Run("ValidLikeDelegates", func(t *testing.T) {
		ms, _, pairs := newMatchService()

		pair, err := ms.Like(context.Background(), "me", "adam")
		require.NoError(t, err)
		assert.Equal(t, [2]string{"me", "adam"}, pairs.likes[0])
		assert.Equal(t, "adam#me", pair.PairID)
		assert.Equal(t, models.MatchStatusPending, pair.Status)
	})
}

func TestGetConfirmedMatches(t *testing.T) {
	ms, _, pairs := newMatchService()
	pairs.matched = []models.PairMatch{
		{PairID: "adam#me", UserA: "adam", UserB: "me", Status: models.MatchStatusMatched},
		{PairID: "ghost#me", UserA: "ghost", UserB: "me", Status: models.MatchStatusMatched},
	}

	matches, err := ms.GetConfirmedMatches(context.Background(), "me")
	require.NoError(t, err)
	// ghost's profile is gone and is skipped
	require.Len(t, matches, 1)
	assert.Equal(t, "adam", matches[0].UserID)
}

func TestBlockAndUnblock(t *testing.T) {
	t.Run("BlockAddsToSetAndResetsPair", func(t *testing.T) {
		ms, directory, pairs := newMatchService()

		require.NoError(t, ms.Block(context.Background(), "me", "adam"))
		assert.Equal(t, [2]string{"me", "adam"}, directory.blocks[0])
		assert.Equal(t, [2]string{"me", "adam"}, pairs.resets[0])
	})

	t.Run("SelfBlockRejected", func(t *testing.T) {
		ms, _, _ := newMatchService()
		assert.ErrorIs(t, ms.Block(context.Background(), "me", "me"), ErrInvalidRequest)
	})

	t.Run("BlockUnknownTargetRejected", func(t *testing.T) {
		ms, directory, pairs := newMatchService()
		assert.ErrorIs(t, ms.Block(context.Background(), "me", "ghost"), ErrNotFound)
		assert.Empty(t, directory.blocks)
		assert.Empty(t, pairs.resets)
	})

	t.Run("UnblockOnlyRemovesFromSet", func(t *testing.T) {
		ms, directory, pairs := newMatchService()

		require.NoError(t, ms.Unblock(context.Background(), "me", "adam"))
		assert.Equal(t, [2]string{"me", "adam"}, directory.unblocks[0])
		assert.Empty(t, pairs.resets)
	})
}
