package usecase

import (
	"context"
	"strings"

	"cambiazo/internal/domain/entity"
	"cambiazo/internal/domain/repository"
	"cambiazo/pkg/errors"
	"cambiazo/pkg/logger"
)

// Notifier pushes a payload to a user's live connection, if any.
type Notifier interface {
	SendJSONToUser(userID string, v interface{})
}

type ChatUseCase struct {
	chatRepo repository.ChatRepository
	notifier Notifier
}

func NewChatUseCase(chatRepo repository.ChatRepository, notifier Notifier) *ChatUseCase {
	return &ChatUseCase{
		chatRepo: chatRepo,
		notifier: notifier,
	}
}

type ChatNotification struct {
	Type    string          `json:"type"`
	Message *entity.Message `json:"message"`
}

// SendMessage appends a message to the pair's conversation. Whitespace-only
// messages are rejected before any write happens.
func (uc *ChatUseCase) SendMessage(ctx context.Context, senderID, recipientID, text string) (*entity.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.BadRequest("Message text is required", nil)
	}
	if recipientID == "" || recipientID == senderID {
		return nil, errors.BadRequest("Invalid recipient", nil)
	}

	message := &entity.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Text:        text,
	}

	conversationID := entity.ConversationID(senderID, recipientID)
	if err := uc.chatRepo.AddMessage(ctx, conversationID, message); err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		uc.notifier.SendJSONToUser(recipientID, ChatNotification{
			Type:    "chat_message",
			Message: message,
		})
	}

	logger.Debug("Message %s sent in conversation %s", message.ID, conversationID)
	return message, nil
}

// GetConversation returns the most recent window of messages between the
// caller and a peer, oldest first.
func (uc *ChatUseCase) GetConversation(ctx context.Context, userID, peerID string) ([]*entity.Message, error) {
	if peerID == "" {
		return nil, errors.BadRequest("Peer is required", nil)
	}

	return uc.chatRepo.ListMessages(ctx, entity.ConversationID(userID, peerID))
}

// Watch opens a live feed over the caller's conversation with a peer.
func (uc *ChatUseCase) Watch(ctx context.Context, userID, peerID string, onSnapshot func([]*entity.Message), onError func(error)) repository.Subscription {
	return uc.chatRepo.Watch(ctx, entity.ConversationID(userID, peerID), onSnapshot, onError)
}
