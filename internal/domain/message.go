package domain

import (
	"errors"
	"fmt"
	"time"
)

// MessageSender identifies who wrote a chat message.
type MessageSender string

const (
	SenderUser   MessageSender = "user"
	SenderCoach  MessageSender = "coach"
	SenderSystem MessageSender = "system"
)

// QuoteStatus type for quote lifecycle
type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteAccepted QuoteStatus = "accepted" // Terminal
	QuoteDeclined QuoteStatus = "declined" // Terminal
)

var (
	ErrQuoteAlreadyResolved = errors.New("quote already resolved")
	ErrInvalidQuoteStatus   = errors.New("quote can only be resolved to accepted or declined")
)

// IsTerminal reports whether no further transition is allowed from s.
func (s QuoteStatus) IsTerminal() bool {
	switch s {
	case QuoteAccepted, QuoteDeclined:
		return true
	default:
		return false
	}
}

// Quote is a priced service offer embedded in a conversation.
type Quote struct {
	Amount  float64     `json:"amount"`
	Service string      `json:"service"`
	Status  QuoteStatus `json:"status"`
}

// Resolve moves a pending quote to a terminal status.
func (q *Quote) Resolve(to QuoteStatus) error {
	if !to.IsTerminal() {
		return fmt.Errorf("%w: got %q", ErrInvalidQuoteStatus, to)
	}
	if q.Status != QuotePending {
		return fmt.Errorf("%w: status is %s", ErrQuoteAlreadyResolved, q.Status)
	}
	q.Status = to
	return nil
}

// Message belongs to exactly one conversation.
type Message struct {
	ID        string        `json:"id"`
	Sender    MessageSender `json:"sender"`
	Text      string        `json:"text,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Quote     *Quote        `json:"quote,omitempty"`
	Plan      Plan          `json:"plan,omitempty"` // Delivered plan payload
}

func (m Message) Clone() Message {
	if m.Quote != nil {
		q := *m.Quote
		m.Quote = &q
	}
	if m.Plan != nil {
		m.Plan = m.Plan.Clone()
	}
	return m
}

// Conversation is a chat thread between one user and one coach.
type Conversation struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	CoachID  string    `json:"coachId"`
	Messages []Message `json:"messages"`
}

func (c Conversation) Clone() Conversation {
	msgs := make([]Message, len(c.Messages))
	for i, m := range c.Messages {
		msgs[i] = m.Clone()
	}
	c.Messages = msgs
	return c
}

// Find returns the index of the message with the given id, or -1.
func (c *Conversation) Find(messageID string) int {
	for i := range c.Messages {
		if c.Messages[i].ID == messageID {
			return i
		}
	}
	return -1
}
