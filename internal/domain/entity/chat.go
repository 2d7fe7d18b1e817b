package entity

import (
	"sort"
	"strings"
	"time"
)

// Message is a single chat message inside a conversation. Messages are
// append-only; the conversation keeps the most recent 50.
type Message struct {
	ID          string    `json:"id" firestore:"id"`
	SenderID    string    `json:"sender_id" firestore:"senderId"`
	RecipientID string    `json:"recipient_id" firestore:"recipientId"`
	Text        string    `json:"text" firestore:"text"`
	Timestamp   time.Time `json:"timestamp" firestore:"timestamp"`
}

// ConversationID derives the order-independent conversation identifier for
// two accounts: both participants resolve to the same id regardless of who
// opened the chat.
func ConversationID(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, "_")
}
