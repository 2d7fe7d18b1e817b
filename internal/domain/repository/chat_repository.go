package repository

import (
	"context"

	"cambiazo/internal/domain/entity"
)

type ChatRepository interface {
	AddMessage(ctx context.Context, conversationID string, message *entity.Message) error
	// ListMessages returns the most recent messages of a conversation in
	// chronological order, capped at the conversation window size.
	ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error)
	Watch(ctx context.Context, conversationID string, onSnapshot func([]*entity.Message), onError func(error)) Subscription
}
