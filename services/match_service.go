package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"kindred_server/models"
	"kindred_server/utils"
)

// ProfileDirectory is the view of the user directory the matching service
// consumes. *UserProfileService implements it.
type ProfileDirectory interface {
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	ScanEligibleProfiles(ctx context.Context, gender string, filters models.CandidateFilters) ([]models.UserProfile, error)
	AddBlocked(ctx context.Context, userID, targetID string) error
	RemoveBlocked(ctx context.Context, userID, targetID string) error
}

// PairStore is the pairwise match store boundary. *PairService implements it.
type PairStore interface {
	Like(ctx context.Context, userID, targetID string) (*models.PairMatch, error)
	ResetPair(ctx context.Context, userID, targetID string) error
	MatchedPairsFor(ctx context.Context, userID string) ([]models.PairMatch, error)
}

// MatchService orchestrates candidate discovery, likes, confirmed matches
// and blocking on top of the directory and the pair store.
type MatchService struct {
	Profiles ProfileDirectory
	Pairs    PairStore
}

// GetCandidates returns one page of the ranked candidate feed for a user:
// eligible profiles filtered, scored, sorted by score descending (stable,
// so equal scores keep retrieval order) and paginated. Non-positive page
// or pageSize values fall back to the defaults.
func (ms *MatchService) GetCandidates(ctx context.Context, userID string, filters models.CandidateFilters, page, pageSize int) (*models.CandidatePage, error) {
	if page < 1 {
		page = models.DefaultPage
	}
	if pageSize < 1 {
		pageSize = models.DefaultPageSize
	}

	me, err := ms.Profiles.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profiles, err := ms.Profiles.ScanEligibleProfiles(ctx, me.Preference, filters)
	if err != nil {
		return nil, err
	}

	wantedInterests := utils.SplitTrimmed(filters.Interests)

	scored := make([]models.ScoredCandidate, 0, len(profiles))
	for i := range profiles {
		candidate := profiles[i]
		if candidate.UserID == userID || !candidate.IsProfileVisible {
			continue
		}
		if me.HasBlocked(candidate.UserID) || candidate.HasBlocked(userID) {
			continue
		}
		// Interest filter is a raw membership test against stored values;
		// only scoring normalizes case and whitespace.
		if len(wantedInterests) > 0 && !anyInterestOverlap(candidate.Interests, wantedInterests) {
			continue
		}
		scored = append(scored, models.ScoredCandidate{
			User:       candidate.Candidate(),
			MatchScore: CompatibilityScore(me, &candidate),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	totalMatches := len(scored)
	totalPages := (totalMatches + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > totalMatches {
		start = totalMatches
	}
	end := start + pageSize
	if end > totalMatches {
		end = totalMatches
	}

	log.Printf("Candidates for %s: %d total, page %d/%d", userID, totalMatches, page, totalPages)
	return &models.CandidatePage{
		Matches:      scored[start:end],
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalMatches: totalMatches,
	}, nil
}

func anyInterestOverlap(stored, wanted []string) bool {
	for _, w := range wanted {
		for _, s := range stored {
			if s == w {
				return true
			}
		}
	}
	return false
}

// Like validates the request and delegates to the pair store. Self-likes
// are invalid, both users must exist, and a block in either direction
// forbids the like before any state is touched.
func (ms *MatchService) Like(ctx context.Context, userID, targetID string) (*models.PairMatch, error) {
	if targetID == "" || userID == targetID {
		return nil, fmt.Errorf("cannot like yourself: %w", ErrInvalidRequest)
	}

	me, err := ms.Profiles.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	target, err := ms.Profiles.GetUserProfile(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if me.HasBlocked(targetID) || target.HasBlocked(userID) {
		return nil, fmt.Errorf("like between %s and %s: %w", userID, targetID, ErrForbidden)
	}

	return ms.Pairs.Like(ctx, userID, targetID)
}

// GetConfirmedMatches returns the public profiles of everyone the user has
// mutually matched with, in no particular order. Participants whose
// profile has since been removed are skipped.
func (ms *MatchService) GetConfirmedMatches(ctx context.Context, userID string) ([]models.CandidateProfile, error) {
	pairs, err := ms.Pairs.MatchedPairsFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	matches := make([]models.CandidateProfile, 0, len(pairs))
	for _, pair := range pairs {
		other := pair.OtherParticipant(userID)
		profile, err := ms.Profiles.GetUserProfile(ctx, other)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		matches = append(matches, profile.Candidate())
	}
	return matches, nil
}

// Block adds targetID to the user's blocked set and resets the pair
// record: any likes between the two are discarded and the pair becomes
// unmatched. Both writes are idempotent, so a partial failure is safe to
// retry.
func (ms *MatchService) Block(ctx context.Context, userID, targetID string) error {
	if targetID == "" || userID == targetID {
		return fmt.Errorf("cannot block yourself: %w", ErrInvalidRequest)
	}
	if _, err := ms.Profiles.GetUserProfile(ctx, targetID); err != nil {
		return err
	}
	if err := ms.Profiles.AddBlocked(ctx, userID, targetID); err != nil {
		return err
	}
	return ms.Pairs.ResetPair(ctx, userID, targetID)
}

// Unblock removes targetID from the user's blocked set. It does not
// restore any prior match state; both users must like again to re-match.
func (ms *MatchService) Unblock(ctx context.Context, userID, targetID string) error {
	if targetID == "" || userID == targetID {
		return fmt.Errorf("cannot unblock yourself: %w", ErrInvalidRequest)
	}
	return ms.Profiles.RemoveBlocked(ctx, userID, targetID)
}
