package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/storage"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrStorageDisabled         = errors.New("media uploads are not configured")
	ErrInvalidUploadPurpose    = errors.New("unknown upload purpose")
	ErrUnsupportedContentType  = errors.New("unsupported image content type")
	ErrUploadURLGenerationFail = errors.New("failed to generate upload URL")
	ErrObjectDeleteFail        = errors.New("failed to delete stored object")
)

// imageExtensions maps accepted upload content types to object key extensions.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type MediaService interface {
	// CreateUploadTicket returns a presigned PUT URL the client uploads the
	// image to directly.
	CreateUploadTicket(ctx context.Context, purpose domain.UploadPurpose, contentType string) (*domain.UploadTicket, error)
	ViewURL(ctx context.Context, objectKey string) (string, error)
	// DeleteObject removes an uploaded image. Admin only.
	DeleteObject(ctx context.Context, objectKey string) error
}

type mediaService struct {
	store   sessionSource
	files   storage.FileStorage // nil when no bucket is configured
	expires time.Duration
}

// sessionSource is the part of the store media needs.
type sessionSource interface {
	CurrentUser() (domain.User, bool)
}

func NewMediaService(st sessionSource, files storage.FileStorage, expires time.Duration) MediaService {
	if expires <= 0 {
		expires = storage.DefaultPresignedURLExpiry
	}
	return &mediaService{store: st, files: files, expires: expires}
}

func (s *mediaService) CreateUploadTicket(ctx context.Context, purpose domain.UploadPurpose, contentType string) (*domain.UploadTicket, error) {
	if s.files == nil {
		return nil, ErrStorageDisabled
	}

	// 1. Who may upload what
	user, ok := s.store.CurrentUser()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	if user.IsGuest() {
		return nil, ErrGuestNotAllowed
	}
	switch purpose {
	case domain.UploadAvatar:
	case domain.UploadMarketItem, domain.UploadBanner:
		if user.Role != domain.RoleAdmin {
			return nil, ErrForbidden
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidUploadPurpose, purpose)
	}

	// 2. Content type
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}

	// 3. Presign
	key := fmt.Sprintf("%s/%s%s", purpose, uuid.NewString(), ext)
	url, err := s.files.GeneratePresignedUploadURL(ctx, key, contentType, s.expires)
	if err != nil {
		log.Printf("ERROR: presign upload for %s failed: %v", key, err)
		return nil, ErrUploadURLGenerationFail
	}

	return &domain.UploadTicket{
		ObjectKey:   key,
		UploadURL:   url,
		ContentType: contentType,
		Purpose:     purpose,
		ExpiresAt:   time.Now().Add(s.expires),
	}, nil
}

// ViewURL presigns a GET for an uploaded object.
func (s *mediaService) ViewURL(ctx context.Context, objectKey string) (string, error) {
	if s.files == nil {
		return "", ErrStorageDisabled
	}
	if objectKey == "" {
		return "", fmt.Errorf("%w: object key is required", ErrValidationFailed)
	}
	url, err := s.files.GeneratePresignedDownloadURL(ctx, objectKey, s.expires)
	if err != nil {
		log.Printf("ERROR: presign download for %s failed: %v", objectKey, err)
		return "", ErrUploadURLGenerationFail
	}
	return url, nil
}

func (s *mediaService) DeleteObject(ctx context.Context, objectKey string) error {
	if s.files == nil {
		return ErrStorageDisabled
	}
	user, ok := s.store.CurrentUser()
	if !ok {
		return ErrNotAuthenticated
	}
	if user.Role != domain.RoleAdmin {
		return ErrForbidden
	}
	purpose, _, found := strings.Cut(objectKey, "/")
	if !found || !validPurpose(domain.UploadPurpose(purpose)) {
		return fmt.Errorf("%w: %q", ErrInvalidUploadPurpose, objectKey)
	}
	if err := s.files.DeleteObject(ctx, objectKey); err != nil {
		log.Printf("ERROR: delete of %s failed: %v", objectKey, err)
		return ErrObjectDeleteFail
	}
	log.Printf("INFO: deleted stored object %s", objectKey)
	return nil
}

func validPurpose(p domain.UploadPurpose) bool {
	switch p {
	case domain.UploadAvatar, domain.UploadMarketItem, domain.UploadBanner:
		return true
	}
	return false
}
