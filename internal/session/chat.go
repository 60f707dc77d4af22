// Package session implements the in-memory state containers for one
// consultation journey: chat, doctor selection, pharmacy fulfillment, and
// user profile. Each store owns its state exclusively behind a sync.RWMutex;
// mutations apply atomically and snapshot reads copy state out, so a reader
// never observes a partially-applied update and never aliases store-internal
// memory. Stores never call each other.
package session

import (
	"sync"

	"github.com/consult/consult/internal/model"
)

// ChatStore holds the ordered message sequence of the active conversation.
type ChatStore struct {
	mu       sync.RWMutex
	messages []model.Message
}

// NewChatStore returns a ChatStore with an empty conversation.
func NewChatStore() *ChatStore {
	return &ChatStore{}
}

// Add appends one message to the end of the conversation. Order of prior
// messages is preserved; the operation is total and always succeeds.
func (s *ChatStore) Add(msg model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Replace swaps the entire conversation for msgs, with no merge against
// prior content. Used when a conversation is loaded from an external source.
func (s *ChatStore) Replace(msgs []model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append([]model.Message(nil), msgs...)
}

// Clear empties the conversation. Calling it on an already-empty store is a
// no-op.
func (s *ChatStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

// Messages returns a snapshot copy of the conversation in append order.
func (s *ChatStore) Messages() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the current number of messages.
func (s *ChatStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}
