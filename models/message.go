package models

// Message is a chat message between a matched pair
type Message struct {
	PairID    string `dynamodbav:"pairId" json:"pairId"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	MessageID string `dynamodbav:"messageId" json:"messageId"`
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	Content   string `dynamodbav:"content" json:"content"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"
