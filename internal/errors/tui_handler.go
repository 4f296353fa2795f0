package errors

import (
	"sync"
	"time"
)

// DefaultMessageLimit bounds the TUIHandler history.
const DefaultMessageLimit = 50

// TUIHandler keeps recent messages for the demo status line.
type TUIHandler struct {
	mu        sync.RWMutex
	messages  []Message
	limit     int
	now       func() time.Time
	onMessage func(msg Message)
}

var _ ErrorHandler = (*TUIHandler)(nil)

// Message is one status line entry.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// Expired reports whether the message is older than ttl at now.
// A non-positive ttl never expires.
func (m Message) Expired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(m.Timestamp) >= ttl
}

// MessageType is the severity of a Message.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeError:
		return "error"
	case MessageTypeWarning:
		return "warning"
	case MessageTypeSuccess:
		return "success"
	default:
		return "info"
	}
}

// NewTUIHandler creates a handler. onMessage, if set, runs for every message.
func NewTUIHandler(onMessage func(msg Message)) *TUIHandler {
	return &TUIHandler{
		limit:     DefaultMessageLimit,
		now:       time.Now,
		onMessage: onMessage,
	}
}

func (h *TUIHandler) Error(msg string)   { h.add(msg, MessageTypeError) }
func (h *TUIHandler) Warning(msg string) { h.add(msg, MessageTypeWarning) }
func (h *TUIHandler) Info(msg string)    { h.add(msg, MessageTypeInfo) }
func (h *TUIHandler) Success(msg string) { h.add(msg, MessageTypeSuccess) }

func (h *TUIHandler) add(text string, typ MessageType) {
	h.mu.Lock()
	msg := Message{Text: text, Type: typ, Timestamp: h.now()}
	h.messages = append(h.messages, msg)
	if over := len(h.messages) - h.limit; over > 0 {
		h.messages = append([]Message(nil), h.messages[over:]...)
	}
	onMessage := h.onMessage
	h.mu.Unlock()

	if onMessage != nil {
		onMessage(msg)
	}
}

// Latest returns the most recent message.
func (h *TUIHandler) Latest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// Clear drops every message.
func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = nil
}
