package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ny11/wellness-app/internal/domain"
)

type fakeSession struct {
	user *domain.User
}

func (f fakeSession) CurrentUser() (domain.User, bool) {
	if f.user == nil {
		return domain.User{}, false
	}
	return *f.user, true
}

type fakeStorage struct {
	keys    []string
	deleted []string
	err     error
}

func (f *fakeStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, objectKey)
	return "https://bucket.test/" + objectKey + "?signed", nil
}

func (f *fakeStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	return "https://bucket.test/" + objectKey + "?view", f.err
}

func (f *fakeStorage) DeleteObject(ctx context.Context, objectKey string) error {
	if f.err == nil {
		f.deleted = append(f.deleted, objectKey)
	}
	return f.err
}

func TestMedia_DisabledWithoutStorage(t *testing.T) {
	svc := NewMediaService(fakeSession{}, nil, 0)
	if _, err := svc.CreateUploadTicket(context.Background(), domain.UploadAvatar, "image/png"); !errors.Is(err, ErrStorageDisabled) {
		t.Fatalf("expected ErrStorageDisabled, got %v", err)
	}
}

func TestMedia_UploadTicket(t *testing.T) {
	files := &fakeStorage{}
	user := &domain.User{ID: "user1", Role: domain.RoleRegular}
	svc := NewMediaService(fakeSession{user: user}, files, 10*time.Minute)
	ctx := context.Background()

	ticket, err := svc.CreateUploadTicket(ctx, domain.UploadAvatar, "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(ticket.ObjectKey, "avatars/") || !strings.HasSuffix(ticket.ObjectKey, ".jpg") {
		t.Fatalf("unexpected object key: %s", ticket.ObjectKey)
	}
	if ticket.UploadURL == "" || len(files.keys) != 1 {
		t.Fatalf("expected a presigned url")
	}

	if _, err := svc.CreateUploadTicket(ctx, domain.UploadBanner, "image/png"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected banner upload to need admin, got %v", err)
	}
	if _, err := svc.CreateUploadTicket(ctx, domain.UploadAvatar, "application/pdf"); !errors.Is(err, ErrUnsupportedContentType) {
		t.Fatalf("expected ErrUnsupportedContentType, got %v", err)
	}
	if _, err := svc.CreateUploadTicket(ctx, domain.UploadPurpose("videos"), "image/png"); !errors.Is(err, ErrInvalidUploadPurpose) {
		t.Fatalf("expected ErrInvalidUploadPurpose, got %v", err)
	}
}

func TestMedia_AdminAndGuest(t *testing.T) {
	files := &fakeStorage{}
	admin := NewMediaService(fakeSession{user: &domain.User{ID: "admin1", Role: domain.RoleAdmin}}, files, 0)
	if _, err := admin.CreateUploadTicket(context.Background(), domain.UploadMarketItem, "image/webp"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	guest := NewMediaService(fakeSession{user: &domain.User{ID: domain.GuestID, Role: domain.RoleRegular}}, files, 0)
	if _, err := guest.CreateUploadTicket(context.Background(), domain.UploadAvatar, "image/png"); !errors.Is(err, ErrGuestNotAllowed) {
		t.Fatalf("expected ErrGuestNotAllowed, got %v", err)
	}
}

func TestMedia_StorageFailure(t *testing.T) {
	files := &fakeStorage{err: errors.New("boom")}
	svc := NewMediaService(fakeSession{user: &domain.User{ID: "user1", Role: domain.RoleRegular}}, files, 0)
	if _, err := svc.CreateUploadTicket(context.Background(), domain.UploadAvatar, "image/png"); !errors.Is(err, ErrUploadURLGenerationFail) {
		t.Fatalf("expected ErrUploadURLGenerationFail, got %v", err)
	}
}

func TestMedia_DeleteObject(t *testing.T) {
	files := &fakeStorage{}
	ctx := context.Background()

	user := NewMediaService(fakeSession{user: &domain.User{ID: "user1", Role: domain.RoleRegular}}, files, 0)
	if err := user.DeleteObject(ctx, "banners/a.png"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	admin := NewMediaService(fakeSession{user: &domain.User{ID: "admin1", Role: domain.RoleAdmin}}, files, 0)
	if err := admin.DeleteObject(ctx, "secrets/a.png"); !errors.Is(err, ErrInvalidUploadPurpose) {
		t.Fatalf("expected ErrInvalidUploadPurpose, got %v", err)
	}
	if err := admin.DeleteObject(ctx, "banners/a.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files.deleted) != 1 || files.deleted[0] != "banners/a.png" {
		t.Fatalf("unexpected deletes: %v", files.deleted)
	}

	files.err = errors.New("boom")
	if err := admin.DeleteObject(ctx, "market/b.png"); !errors.Is(err, ErrObjectDeleteFail) {
		t.Fatalf("expected ErrObjectDeleteFail, got %v", err)
	}
}
