package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"cambiazo/internal/domain/entity"
	apperrors "cambiazo/pkg/errors"
)

func TestSendMessageRejectsEmptyText(t *testing.T) {
	uc := NewChatUseCase(newFakeChatRepository(), newFakeNotifier())
	ctx := context.Background()

	_, err := uc.SendMessage(ctx, "alice", "bob", "")
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))

	_, err = uc.SendMessage(ctx, "alice", "bob", "   \n\t ")
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestSendMessageRejectsSelfAndEmptyRecipient(t *testing.T) {
	uc := NewChatUseCase(newFakeChatRepository(), newFakeNotifier())
	ctx := context.Background()

	_, err := uc.SendMessage(ctx, "alice", "alice", "hola")
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))

	_, err = uc.SendMessage(ctx, "alice", "", "hola")
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestSendMessageNotifiesRecipient(t *testing.T) {
	notifier := newFakeNotifier()
	uc := NewChatUseCase(newFakeChatRepository(), notifier)

	message, err := uc.SendMessage(context.Background(), "alice", "bob", "  hola  ")
	assert.NoError(t, err)
	assert.Equal(t, "hola", message.Text)
	assert.Len(t, notifier.sent["bob"], 1)
	assert.Empty(t, notifier.sent["alice"])
}

func TestConversationIsSharedBetweenParticipants(t *testing.T) {
	repo := newFakeChatRepository()
	uc := NewChatUseCase(repo, newFakeNotifier())
	ctx := context.Background()

	_, err := uc.SendMessage(ctx, "alice", "bob", "hola")
	assert.NoError(t, err)
	_, err = uc.SendMessage(ctx, "bob", "alice", "que tal")
	assert.NoError(t, err)

	// Both participants resolve to the same conversation regardless of
	// which side asks.
	fromAlice, err := uc.GetConversation(ctx, "alice", "bob")
	assert.NoError(t, err)
	fromBob, err := uc.GetConversation(ctx, "bob", "alice")
	assert.NoError(t, err)

	assert.Len(t, fromAlice, 2)
	assert.Equal(t, fromAlice, fromBob)

	messages := repo.conversations[entity.ConversationID("alice", "bob")]
	assert.Len(t, messages, 2)
}
