package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"ny11/wellness-app/internal/catalog"
	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/store"
)

// --- Error Definitions ---
var (
	ErrCoachNotFound        = errors.New("coach not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("message text cannot be empty")
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrQuoteNotPending      = errors.New("quote has already been resolved")
	ErrInvalidQuote         = errors.New("quote amount must be positive and service must be set")
)

// Quote resolution toasts.
const (
	QuoteAcceptedToast = "Quote accepted! Check your dashboard for the new plan soon."
	QuoteDeclinedToast = "You have declined the quote."
)

// ChatPartner is someone the session user can talk to.
type ChatPartner struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Avatar   string      `json:"avatar"`
	Subtitle string      `json:"subtitle"`
	Role     domain.Role `json:"role"`
}

type ChatService interface {
	Partners(ctx context.Context) ([]ChatPartner, error)
	Open(ctx context.Context, coachID string) (*domain.Conversation, error)
	Conversations(ctx context.Context) ([]domain.Conversation, error)
	Conversation(ctx context.Context, conversationID string) (*domain.Conversation, error)
	Send(ctx context.Context, conversationID, text string) (*domain.Message, error)
	OfferQuote(ctx context.Context, conversationID string, amount float64, service string) (*domain.Message, error)
	ResolveQuote(ctx context.Context, conversationID, messageID string, status domain.QuoteStatus) error
}

type chatService struct {
	store   *store.Store
	catalog *catalog.Catalog
}

func NewChatService(st *store.Store, cat *catalog.Catalog) ChatService {
	return &chatService{store: st, catalog: cat}
}

// Partners lists chat partners by role: coaches see regular users, everyone
// else sees coaches.
func (s *chatService) Partners(ctx context.Context) ([]ChatPartner, error) {
	user, err := s.member()
	if err != nil {
		return nil, err
	}

	snap := s.store.Snapshot()
	partners := []ChatPartner{}
	switch user.Role {
	case domain.RoleCoach:
		for _, u := range snap.Users {
			if u.Role != domain.RoleRegular {
				continue
			}
			partners = append(partners, ChatPartner{ID: u.ID, Name: u.Name, Avatar: u.Avatar, Subtitle: u.Email, Role: u.Role})
		}
	case domain.RoleRegular, domain.RoleAdmin:
		for _, c := range snap.Coaches {
			partners = append(partners, ChatPartner{ID: c.ID, Name: c.Name, Avatar: c.Avatar, Subtitle: c.Specialty, Role: domain.RoleCoach})
		}
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrForbidden, user.Role)
	}
	return partners, nil
}

// Open returns the session user's conversation with coachID, creating it on
// first contact. Coaches reach their clients through Conversations instead.
func (s *chatService) Open(ctx context.Context, coachID string) (*domain.Conversation, error) {
	user, err := s.member()
	if err != nil {
		return nil, err
	}
	if user.Role == domain.RoleCoach {
		return nil, ErrForbidden
	}

	conv, ok := s.store.OpenConversation(coachID)
	if !ok {
		return nil, ErrCoachNotFound
	}
	return &conv, nil
}

func (s *chatService) Conversations(ctx context.Context) ([]domain.Conversation, error) {
	if _, err := s.member(); err != nil {
		return nil, err
	}
	return s.store.Conversations(), nil
}

func (s *chatService) Conversation(ctx context.Context, conversationID string) (*domain.Conversation, error) {
	_, conv, err := s.participant(conversationID)
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (s *chatService) Send(ctx context.Context, conversationID, text string) (*domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	if _, _, err := s.participant(conversationID); err != nil {
		return nil, err
	}
	msg, ok := s.store.SendMessage(conversationID, text)
	if !ok {
		return nil, ErrConversationNotFound
	}
	return &msg, nil
}

// OfferQuote lets the conversation's coach put a priced service on the table.
func (s *chatService) OfferQuote(ctx context.Context, conversationID string, amount float64, service string) (*domain.Message, error) {
	if amount <= 0 || strings.TrimSpace(service) == "" {
		return nil, ErrInvalidQuote
	}
	user, conv, err := s.participant(conversationID)
	if err != nil {
		return nil, err
	}
	if user.ID != conv.CoachID {
		return nil, ErrForbidden
	}
	msg, ok := s.store.OfferQuote(conversationID, amount, service)
	if !ok {
		return nil, ErrConversationNotFound
	}
	return &msg, nil
}

// ResolveQuote accepts or declines a pending quote on behalf of the
// conversation's client and raises the matching toast.
func (s *chatService) ResolveQuote(ctx context.Context, conversationID, messageID string, status domain.QuoteStatus) error {
	if !status.IsTerminal() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidQuoteStatus, status)
	}
	user, conv, err := s.participant(conversationID)
	if err != nil {
		return err
	}
	if user.ID != conv.UserID {
		return ErrForbidden
	}

	idx := conv.Find(messageID)
	if idx < 0 || conv.Messages[idx].Quote == nil {
		return ErrQuoteNotFound
	}
	if !s.store.ResolveQuote(conversationID, messageID, status) {
		return ErrQuoteNotPending
	}

	log.Printf("INFO: quote %s in conversation %s %s", messageID, conversationID, status)
	if status == domain.QuoteAccepted {
		s.store.ShowToast(QuoteAcceptedToast, domain.SeveritySuccess)
	} else {
		s.store.ShowToast(QuoteDeclinedToast, domain.SeverityError)
	}
	return nil
}

// member returns the session user. A guest reaching a chat surface is told to
// log in and is logged out.
func (s *chatService) member() (domain.User, error) {
	user, err := memberUser(s.store)
	if errors.Is(err, ErrGuestNotAllowed) {
		lang := s.store.Snapshot().Language
		s.store.ShowToast(s.catalog.Translate(lang, catalog.KeyLoginToContinue), domain.SeverityError)
		s.store.Logout()
	}
	return user, err
}

// participant loads a conversation the session user takes part in.
func (s *chatService) participant(conversationID string) (domain.User, domain.Conversation, error) {
	user, err := s.member()
	if err != nil {
		return user, domain.Conversation{}, err
	}
	conv, ok := s.store.Conversation(conversationID)
	if !ok || (conv.UserID != user.ID && conv.CoachID != user.ID) {
		return user, domain.Conversation{}, ErrConversationNotFound
	}
	return user, conv, nil
}
