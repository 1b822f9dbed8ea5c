package services

import (
	"context"
	"fmt"
	"log"

	"kindred_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type UserProfileService struct {
	Dynamo *DynamoService
}

func profileKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
}

// AddUserProfile stores a new user profile
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.UserID == "" {
		return nil, fmt.Errorf("userId is required: %w", ErrInvalidRequest)
	}
	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, profile); err != nil {
		return nil, err
	}
	log.Printf("Profile created for %s", profile.UserID)
	return &profile, nil
}

// GetUserProfile retrieves a user profile by ID
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, profileKey(userID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("profile %s: %w", userID, ErrNotFound)
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// UpdateUserProfile applies a partial update to a profile. The userId key
// itself is immutable and silently skipped.
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.UserProfile, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", ErrInvalidRequest)
	}

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue)
	expressionAttributeNames := make(map[string]string)

	for k, v := range updates {
		if k == "userId" {
			continue
		}
		value, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field %s: %w", k, err)
		}
		updateExpression += " #" + k + " = :" + k + ","
		expressionAttributeValues[":"+k] = value
		expressionAttributeNames["#"+k] = k
	}
	if len(expressionAttributeValues) == 0 {
		return nil, fmt.Errorf("no updatable fields: %w", ErrInvalidRequest)
	}
	updateExpression = updateExpression[:len(updateExpression)-1]

	updatedItem, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable, profileKey(userID), updateExpression, "", expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, err
	}

	var updatedProfile models.UserProfile
	if err := attributevalue.UnmarshalMap(updatedItem, &updatedProfile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}
	return &updatedProfile, nil
}

// DeleteUserProfile removes a user profile. Admin operation; pair records
// are never deleted with it.
func (ups *UserProfileService) DeleteUserProfile(ctx context.Context, userID string) error {
	return ups.Dynamo.DeleteItem(ctx, models.UserProfilesTable, profileKey(userID))
}

// AddBlocked adds targetID to the user's blocked set. The set add is
// idempotent, so repeated blocks are safe.
func (ups *UserProfileService) AddBlocked(ctx context.Context, userID, targetID string) error {
	_, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable, profileKey(userID),
		"ADD blocked :target", "attribute_exists(userId)",
		map[string]types.AttributeValue{
			":target": &types.AttributeValueMemberSS{Value: []string{targetID}},
		}, nil)
	if err != nil {
		if IsConditionalCheckFailed(err) {
			return fmt.Errorf("profile %s: %w", userID, ErrNotFound)
		}
		return err
	}
	log.Printf("%s blocked %s", userID, targetID)
	return nil
}

// RemoveBlocked removes targetID from the user's blocked set
func (ups *UserProfileService) RemoveBlocked(ctx context.Context, userID, targetID string) error {
	_, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable, profileKey(userID),
		"DELETE blocked :target", "attribute_exists(userId)",
		map[string]types.AttributeValue{
			":target": &types.AttributeValueMemberSS{Value: []string{targetID}},
		}, nil)
	if err != nil {
		if IsConditionalCheckFailed(err) {
			return fmt.Errorf("profile %s: %w", userID, ErrNotFound)
		}
		return err
	}
	log.Printf("%s unblocked %s", userID, targetID)
	return nil
}

// ScanEligibleProfiles returns visible profiles of the given gender,
// narrowed by whichever equality filters are supplied. Interest overlap
// and block checks are applied by the matching service on the result.
func (ups *UserProfileService) ScanEligibleProfiles(ctx context.Context, gender string, filters models.CandidateFilters) ([]models.UserProfile, error) {
	equalFields := map[string]types.AttributeValue{
		"gender":           &types.AttributeValueMemberS{Value: gender},
		"isProfileVisible": &types.AttributeValueMemberBOOL{Value: true},
	}
	if filters.Education != "" {
		equalFields["education"] = &types.AttributeValueMemberS{Value: filters.Education}
	}
	if filters.RelationshipGoals != "" {
		equalFields["relationshipGoals"] = &types.AttributeValueMemberS{Value: filters.RelationshipGoals}
	}
	if filters.PersonalityType != "" {
		equalFields["personalityType"] = &types.AttributeValueMemberS{Value: filters.PersonalityType}
	}

	var profiles []models.UserProfile
	err := ups.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, equalFields, nil, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch eligible profiles: %w", err)
	}
	return profiles, nil
}
