package store

import (
	"fmt"
	"strings"

	"ny11/wellness-app/internal/catalog"
	"ny11/wellness-app/internal/domain"

	"github.com/google/uuid"
)

// Canned coach-flow content.
const (
	CoachRecommendationText = "Based on your goals, I recommend a personalized nutrition and workout plan. I can create one for you. Here is the quote."
	CoachPlanDeliveryText   = "Great! Here is your personalized plan. It has been added to your dashboard."
	AutoReplyText           = "Thanks for your message. I'll get back to you shortly."

	DefaultQuoteAmount  = 99.99
	DefaultQuoteService = "1-Month Personalized Plan"
)

// QuotePlanGoal is the goal used to derive the plan delivered after a quote is accepted.
const QuotePlanGoal = domain.GoalMuscleBuild

func newMessageID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// OpenConversation returns the session user's conversation with coachID,
// creating it with the coach's greeting if none exists yet.
func (s *Store) OpenConversation(coachID string) (domain.Conversation, bool) {
	var conv domain.Conversation
	ok := s.mutate(func() bool {
		if s.currentUser == nil {
			return false
		}
		coach, found := s.coachLocked(coachID)
		if !found {
			return false
		}
		for _, c := range s.conversations {
			if c.UserID == s.currentUser.ID && c.CoachID == coachID {
				conv = c.Clone()
				return false
			}
		}
		created := &domain.Conversation{
			ID:      "conv-" + uuid.NewString(),
			UserID:  s.currentUser.ID,
			CoachID: coachID,
			Messages: []domain.Message{{
				ID:        newMessageID("greeting"),
				Sender:    domain.SenderCoach,
				Text:      fmt.Sprintf("Hello! I'm %s. How can I help you achieve your health goals today?", coach.Name),
				Timestamp: s.clock.Now(),
			}},
		}
		s.conversations = append(s.conversations, created)
		conv = created.Clone()
		return true
	})
	// An existing conversation is found without a state change.
	return conv, ok || conv.ID != ""
}

// Conversation returns a copy of the conversation with id.
func (s *Store) Conversation(id string) (domain.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.conversationLocked(id); c != nil {
		return c.Clone(), true
	}
	return domain.Conversation{}, false
}

// Conversations lists the session user's conversations, as user or as coach.
func (s *Store) Conversations() []domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Conversation{}
	if s.currentUser == nil {
		return out
	}
	for _, c := range s.conversations {
		if c.UserID == s.currentUser.ID || c.CoachID == s.currentUser.ID {
			out = append(out, c.Clone())
		}
	}
	return out
}

// SendMessage appends text from the session user to a conversation they take
// part in and schedules the simulated reply. A user's first message gets the
// coach's recommendation and a pending quote, with a "new message"
// notification; later messages, and messages sent by the coach, get a short
// automatic reply.
func (s *Store) SendMessage(conversationID, text string) (domain.Message, bool) {
	var sent domain.Message
	ok := s.mutate(func() bool {
		if s.currentUser == nil || strings.TrimSpace(text) == "" {
			return false
		}
		conv := s.conversationLocked(conversationID)
		if conv == nil {
			return false
		}
		var sender domain.MessageSender
		switch s.currentUser.ID {
		case conv.UserID:
			sender = domain.SenderUser
		case conv.CoachID:
			sender = domain.SenderCoach
		default:
			return false
		}

		sent = domain.Message{
			ID:        newMessageID(string(sender)),
			Sender:    sender,
			Text:      text,
			Timestamp: s.clock.Now(),
		}
		conv.Messages = append(conv.Messages, sent)

		if sender == domain.SenderUser && !hasQuote(conv) {
			s.scheduleLocked(s.timings.CoachReplyDelay, "coach reply", func() {
				s.coachRecommendLocked(conversationID)
			})
		} else {
			replyAs := domain.SenderCoach
			if sender == domain.SenderCoach {
				replyAs = domain.SenderUser
			}
			s.scheduleLocked(s.timings.CoachReplyDelay, "auto reply", func() {
				s.appendMessageLocked(conversationID, domain.Message{
					ID:     newMessageID("reply"),
					Sender: replyAs,
					Text:   AutoReplyText,
				})
			})
		}
		return true
	})
	return sent, ok
}

// OfferQuote injects a pending service quote from the coach into a conversation.
func (s *Store) OfferQuote(conversationID string, amount float64, service string) (domain.Message, bool) {
	var msg domain.Message
	ok := s.mutate(func() bool {
		if amount <= 0 || s.conversationLocked(conversationID) == nil {
			return false
		}
		msg = s.appendMessageLocked(conversationID, domain.Message{
			ID:     newMessageID("quote"),
			Sender: domain.SenderCoach,
			Quote:  &domain.Quote{Amount: amount, Service: service, Status: domain.QuotePending},
		})
		return true
	})
	return msg, ok
}

// ResolveQuote moves a pending quote to accepted or declined and appends a
// system message recording the outcome. Accepting also schedules delivery of a
// derived plan: a coach message carrying the plan, installation of that plan
// for today, and a "plan updated" notification. Resolving a missing or
// already-resolved quote returns false and changes nothing.
func (s *Store) ResolveQuote(conversationID, messageID string, status domain.QuoteStatus) bool {
	return s.mutate(func() bool {
		conv := s.conversationLocked(conversationID)
		if conv == nil {
			return false
		}
		idx := conv.Find(messageID)
		if idx < 0 || conv.Messages[idx].Quote == nil {
			return false
		}
		if err := conv.Messages[idx].Quote.Resolve(status); err != nil {
			return false
		}

		conv.Messages = append(conv.Messages, domain.Message{
			ID:        newMessageID("sys"),
			Sender:    domain.SenderSystem,
			Text:      fmt.Sprintf("You have %s the quote.", status),
			Timestamp: s.clock.Now(),
		})

		if status == domain.QuoteAccepted {
			s.scheduleLocked(s.timings.PlanDeliveryDelay, "plan delivery", func() {
				s.deliverPlanLocked(conversationID)
			})
		}
		return true
	})
}

func (s *Store) coachRecommendLocked(conversationID string) {
	conv := s.conversationLocked(conversationID)
	if conv == nil {
		return
	}
	s.appendMessageLocked(conversationID, domain.Message{
		ID:     newMessageID("coach"),
		Sender: domain.SenderCoach,
		Text:   CoachRecommendationText,
	})
	s.appendMessageLocked(conversationID, domain.Message{
		ID:     newMessageID("quote"),
		Sender: domain.SenderCoach,
		Quote:  &domain.Quote{Amount: DefaultQuoteAmount, Service: DefaultQuoteService, Status: domain.QuotePending},
	})

	coach, _ := s.coachLocked(conv.CoachID)
	title := strings.ReplaceAll(s.catalog.Translate(s.language, catalog.KeyNewMessageFrom), "{name}", coach.Name)
	s.pushNotificationLocked(domain.Notification{
		Title: title,
		Body:  CoachRecommendationText,
		Icon:  coach.Initial(),
	})
}

func (s *Store) deliverPlanLocked(conversationID string) {
	delivered := domain.Plan{s.today(): s.engine.Derive(QuotePlanGoal)}
	s.appendMessageLocked(conversationID, domain.Message{
		ID:     newMessageID("plan"),
		Sender: domain.SenderCoach,
		Text:   CoachPlanDeliveryText,
		Plan:   delivered,
	})
	s.mergePlanLocked(delivered)
	s.pushNotificationLocked(domain.Notification{
		Title: s.catalog.Translate(s.language, catalog.KeyPlanUpdatedTitle),
		Body:  s.catalog.Translate(s.language, catalog.KeyPlanUpdatedBody),
	})
}

// appendMessageLocked stamps and appends msg. Returns the stored message.
func (s *Store) appendMessageLocked(conversationID string, msg domain.Message) domain.Message {
	conv := s.conversationLocked(conversationID)
	if conv == nil {
		return domain.Message{}
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = s.clock.Now()
	}
	conv.Messages = append(conv.Messages, msg)
	return msg.Clone()
}

func (s *Store) conversationLocked(id string) *domain.Conversation {
	for _, c := range s.conversations {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *Store) coachLocked(id string) (domain.Coach, bool) {
	for _, c := range s.coaches {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Coach{}, false
}

func hasQuote(c *domain.Conversation) bool {
	for _, m := range c.Messages {
		if m.Quote != nil {
			return true
		}
	}
	return false
}
