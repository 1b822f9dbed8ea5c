package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"kindred_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PairService owns the like/match state machine. One record exists per
// unordered pair, keyed by the canonical pair id, and every write is a
// single UpdateItem so concurrent likes cannot fork duplicate records.
type PairService struct {
	Dynamo *DynamoService
}

// CanonicalPair orders two user ids and returns them with the pair key.
// The lexicographically smaller id is always userA.
func CanonicalPair(a, b string) (userA, userB, pairID string) {
	if b < a {
		a, b = b, a
	}
	return a, b, a + "#" + b
}

func pairKey(pairID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pairId": &types.AttributeValueMemberS{Value: pairID},
	}
}

// isMutual reports whether both pair members are in the likedBy set
func isMutual(likedBy []string, userA, userB string) bool {
	var a, b bool
	for _, id := range likedBy {
		if id == userA {
			a = true
		}
		if id == userB {
			b = true
		}
	}
	return a && b
}

// Like records that userID likes targetID. The record is created on the
// first like with status pending; when both members have liked, status
// becomes matched. Repeating a like changes nothing, and a like after a
// reset starts a fresh pending cycle.
//
// The write happens in two steps, each atomic on the pair key: an upsert
// that ADDs the liker to the likedBy string set and moves any
// non-matched status to pending (so an unmatched record re-enters the
// cycle), then, only if the returned set holds both members, a
// promotion to matched guarded by a condition that both likes are
// still present (a concurrent block clears the set and voids the
// promotion). When the pair is already matched the upsert condition
// fails and the like is recorded without touching status. Every step
// is idempotent, so a failed or duplicated call can be retried whole.
func (ps *PairService) Like(ctx context.Context, userID, targetID string) (*models.PairMatch, error) {
	userA, userB, pairID := CanonicalPair(userID, targetID)
	now := time.Now().UTC().Format(time.RFC3339)

	updateExpression := "SET userA = if_not_exists(userA, :userA), " +
		"userB = if_not_exists(userB, :userB), " +
		"#st = :pending, " +
		"createdAt = if_not_exists(createdAt, :now), " +
		"updatedAt = :now " +
		"ADD likedBy :liker"

	attrs, err := ps.Dynamo.UpdateItem(ctx, models.PairMatchesTable, pairKey(pairID),
		updateExpression,
		"attribute_not_exists(pairId) OR #st <> :matched",
		map[string]types.AttributeValue{
			":userA":   &types.AttributeValueMemberS{Value: userA},
			":userB":   &types.AttributeValueMemberS{Value: userB},
			":pending": &types.AttributeValueMemberS{Value: models.MatchStatusPending},
			":matched": &types.AttributeValueMemberS{Value: models.MatchStatusMatched},
			":now":     &types.AttributeValueMemberS{Value: now},
			":liker":   &types.AttributeValueMemberSS{Value: []string{userID}},
		},
		map[string]string{"#st": "status"})
	if err != nil {
		if !IsConditionalCheckFailed(err) {
			return nil, fmt.Errorf("failed to record like for pair %s: %w", pairID, err)
		}
		// Pair is already matched; record the like without a status change
		attrs, err = ps.Dynamo.UpdateItem(ctx, models.PairMatchesTable, pairKey(pairID),
			"SET updatedAt = :now ADD likedBy :liker", "",
			map[string]types.AttributeValue{
				":now":   &types.AttributeValueMemberS{Value: now},
				":liker": &types.AttributeValueMemberSS{Value: []string{userID}},
			}, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to record like for pair %s: %w", pairID, err)
		}
	}

	pair, err := unmarshalPair(attrs)
	if err != nil {
		return nil, err
	}

	if pair.Status != models.MatchStatusMatched && isMutual(pair.LikedBy, userA, userB) {
		promoted, err := ps.promoteToMatched(ctx, pairID, userA, userB, now)
		if err != nil {
			return nil, err
		}
		if promoted != nil {
			pair = promoted
			log.Printf("🎉 Match confirmed: %s and %s", userA, userB)
		}
	}

	return pair, nil
}

// promoteToMatched flips the pair to matched as long as both likes are
// still present. A lost race against a block is not an error; the caller
// gets the record as the block left it.
func (ps *PairService) promoteToMatched(ctx context.Context, pairID, userA, userB, now string) (*models.PairMatch, error) {
	attrs, err := ps.Dynamo.UpdateItem(ctx, models.PairMatchesTable, pairKey(pairID),
		"SET #st = :matched, updatedAt = :now",
		"contains(likedBy, :userA) AND contains(likedBy, :userB)",
		map[string]types.AttributeValue{
			":matched": &types.AttributeValueMemberS{Value: models.MatchStatusMatched},
			":now":     &types.AttributeValueMemberS{Value: now},
			":userA":   &types.AttributeValueMemberS{Value: userA},
			":userB":   &types.AttributeValueMemberS{Value: userB},
		},
		map[string]string{"#st": "status"})
	if err != nil {
		if IsConditionalCheckFailed(err) {
			return ps.getPairByID(ctx, pairID)
		}
		return nil, fmt.Errorf("failed to promote pair %s: %w", pairID, err)
	}
	return unmarshalPair(attrs)
}

// ResetPair clears all romantic intent between two users: likedBy is
// emptied and status becomes unmatched. Both must like again to re-match.
// A pair with no record is left without one.
func (ps *PairService) ResetPair(ctx context.Context, userID, targetID string) error {
	_, _, pairID := CanonicalPair(userID, targetID)
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := ps.Dynamo.UpdateItem(ctx, models.PairMatchesTable, pairKey(pairID),
		"SET #st = :unmatched, updatedAt = :now REMOVE likedBy",
		"attribute_exists(pairId)",
		map[string]types.AttributeValue{
			":unmatched": &types.AttributeValueMemberS{Value: models.MatchStatusUnmatched},
			":now":       &types.AttributeValueMemberS{Value: now},
		},
		map[string]string{"#st": "status"})
	if err != nil {
		if IsConditionalCheckFailed(err) {
			return nil
		}
		return fmt.Errorf("failed to reset pair %s: %w", pairID, err)
	}
	log.Printf("Pair %s reset to %s", pairID, models.MatchStatusUnmatched)
	return nil
}

// GetPair fetches the record for a pair, or nil if nobody has liked yet
func (ps *PairService) GetPair(ctx context.Context, userID, targetID string) (*models.PairMatch, error) {
	_, _, pairID := CanonicalPair(userID, targetID)
	return ps.getPairByID(ctx, pairID)
}

func (ps *PairService) getPairByID(ctx context.Context, pairID string) (*models.PairMatch, error) {
	item, err := ps.Dynamo.GetItem(ctx, models.PairMatchesTable, pairKey(pairID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return unmarshalPair(item)
}

// MatchedPairsFor returns every matched pair the user participates in,
// querying the userA and userB GSIs.
func (ps *PairService) MatchedPairsFor(ctx context.Context, userID string) ([]models.PairMatch, error) {
	var pairs []models.PairMatch
	for _, index := range []struct {
		name string
		key  string
	}{
		{models.UserAIndex, "userA"},
		{models.UserBIndex, "userB"},
	} {
		items, err := ps.Dynamo.QueryItemsWithIndex(ctx, models.PairMatchesTable, index.name,
			index.key+" = :id", "#st = :matched",
			map[string]types.AttributeValue{
				":id":      &types.AttributeValueMemberS{Value: userID},
				":matched": &types.AttributeValueMemberS{Value: models.MatchStatusMatched},
			},
			map[string]string{"#st": "status"}, 100)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch matched pairs for %s: %w", userID, err)
		}

		var page []models.PairMatch
		if err := attributevalue.UnmarshalListOfMaps(items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal pairs: %w", err)
		}
		pairs = append(pairs, page...)
	}
	return pairs, nil
}

func unmarshalPair(attrs map[string]types.AttributeValue) (*models.PairMatch, error) {
	var pair models.PairMatch
	if err := attributevalue.UnmarshalMap(attrs, &pair); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pair record: %w", err)
	}
	// DynamoDB string sets cannot be empty; absence means nobody has liked
	if pair.LikedBy == nil {
		pair.LikedBy = []string{}
	}
	return &pair, nil
}
