package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"kindred_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// PairReader is the read-only slice of the pair store chat depends on
type PairReader interface {
	GetPair(ctx context.Context, userID, targetID string) (*models.PairMatch, error)
}

// ChatService persists messages between matched pairs. Delivery is best
// effort; the socket relay handles fan-out.
type ChatService struct {
	Dynamo *DynamoService
	Pairs  PairReader
}

// SendMessage stores a message from senderID to targetID. Only matched
// pairs may exchange messages.
func (cs *ChatService) SendMessage(ctx context.Context, senderID, targetID, content string) (*models.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("message content is required: %w", ErrInvalidRequest)
	}
	if targetID == "" || senderID == targetID {
		return nil, fmt.Errorf("cannot message yourself: %w", ErrInvalidRequest)
	}

	pair, err := cs.Pairs.GetPair(ctx, senderID, targetID)
	if err != nil {
		return nil, err
	}
	if pair == nil || pair.Status != models.MatchStatusMatched {
		return nil, fmt.Errorf("no match between %s and %s: %w", senderID, targetID, ErrForbidden)
	}

	message := models.Message{
		PairID:    pair.PairID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
		MessageID: uuid.NewString(),
		SenderID:  senderID,
		Content:   content,
	}

	if err := cs.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	log.Printf("📩 Message %s stored for pair %s", message.MessageID, pair.PairID)
	return &message, nil
}

// GetMessages fetches the latest messages between the caller and the other
// participant, newest first.
func (cs *ChatService) GetMessages(ctx context.Context, userID, targetID string, limit int32) ([]models.Message, error) {
	if limit < 1 {
		limit = 50
	}

	_, _, pairID := CanonicalPair(userID, targetID)
	items, err := cs.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable,
		"pairId = :pairId",
		map[string]types.AttributeValue{
			":pairId": &types.AttributeValueMemberS{Value: pairID},
		},
		nil, limit, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}
	return messages, nil
}
