package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"cambiazo/internal/domain/entity"
	"cambiazo/internal/domain/repository"
	"cambiazo/internal/infrastructure/feed"
	"cambiazo/pkg/errors"
	"cambiazo/pkg/logger"
)

// conversationWindow caps how much history a conversation feed carries.
const conversationWindow = 50

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) messages(conversationID string) *firestore.CollectionRef {
	return r.client.Collection("conversations").Doc(conversationID).Collection("messages")
}

func (r *firestoreChatRepository) AddMessage(ctx context.Context, conversationID string, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	_, err := r.messages(conversationID).Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to send message", err)
	}

	return nil
}

func (r *firestoreChatRepository) ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	iter := r.messageQuery(conversationID).Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate messages", err)
		}
		if message, ok := decodeMessage(doc); ok {
			messages = append(messages, message)
		}
	}

	return chronological(messages), nil
}

func (r *firestoreChatRepository) Watch(ctx context.Context, conversationID string, onSnapshot func([]*entity.Message), onError func(error)) repository.Subscription {
	return feed.Watch(ctx, r.messageQuery(conversationID), decodeMessage, func(messages []*entity.Message) {
		onSnapshot(chronological(messages))
	}, onError)
}

// messageQuery fetches newest-first so the limit keeps the most recent
// window; chronological flips the page for display order.
func (r *firestoreChatRepository) messageQuery(conversationID string) firestore.Query {
	return r.messages(conversationID).
		OrderBy("timestamp", firestore.Desc).
		Limit(conversationWindow)
}

func chronological(messages []*entity.Message) []*entity.Message {
	out := make([]*entity.Message, len(messages))
	for i, message := range messages {
		out[len(messages)-1-i] = message
	}
	return out
}

func decodeMessage(doc *firestore.DocumentSnapshot) (*entity.Message, bool) {
	var message entity.Message
	if err := doc.DataTo(&message); err != nil {
		logger.Warn("Skipping malformed message %s: %v", doc.Ref.ID, err)
		return nil, false
	}
	message.ID = doc.Ref.ID
	return &message, true
}
