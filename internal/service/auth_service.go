package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/store"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
	ErrInvalidToken         = errors.New("invalid authentication token")
	ErrNotAuthenticated     = errors.New("no active session")
	ErrGuestNotAllowed      = errors.New("guests must log in to continue")
	ErrForbidden            = errors.New("operation not permitted for this role")
	ErrValidationFailed     = errors.New("validation failed")
)

// Claims is the JWT payload identifying a session.
type Claims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// RegisterInput carries a new regular account.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Avatar   string
}

// CoachRegisterInput carries a new coach account and its public profile.
type CoachRegisterInput struct {
	RegisterInput
	Specialty       string
	Bio             string
	ExperienceYears int
	ClientsHelped   int
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (token string, user *domain.User, err error)
	RegisterCoach(ctx context.Context, in CoachRegisterInput) (token string, user *domain.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	LoginAsGuest(ctx context.Context) (token string, user *domain.User, err error)
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) (*domain.User, error)
	ParseToken(tokenString string) (*Claims, error)
	// SessionActive reports whether userID owns the store's current session.
	SessionActive(userID string) bool
}

// authService implements AuthService on top of the domain store.
type authService struct {
	store         *store.Store
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(st *store.Store, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	return &authService{
		store:         st,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates a regular account and starts its session.
func (s *authService) Register(ctx context.Context, in RegisterInput) (string, *domain.User, error) {
	// 1. Basic input validation
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return "", nil, fmt.Errorf("%w: name and email are required", ErrValidationFailed)
	}

	// 2. Check if user already exists
	if s.store.EmailTaken(in.Email) {
		return "", nil, ErrUserAlreadyExists
	}

	// 3. Hash the password
	hash, err := hashPassword(in.Password)
	if err != nil {
		return "", nil, err
	}

	// 4. Create the user; the store re-checks the email atomically
	user, ok := s.store.RegisterUser(domain.UserRegistration{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Phone:        in.Phone,
		Avatar:       in.Avatar,
		PasswordHash: hash,
	})
	if !ok {
		return "", nil, ErrUserAlreadyExists
	}
	return s.issue(user)
}

// RegisterCoach creates a paired coach account and starts its session.
func (s *authService) RegisterCoach(ctx context.Context, in CoachRegisterInput) (string, *domain.User, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return "", nil, fmt.Errorf("%w: name and email are required", ErrValidationFailed)
	}
	if strings.TrimSpace(in.Avatar) == "" {
		return "", nil, fmt.Errorf("%w: coach avatar is required", ErrValidationFailed)
	}
	if in.ExperienceYears < 0 || in.ClientsHelped < 0 {
		return "", nil, fmt.Errorf("%w: experience and clients helped must not be negative", ErrValidationFailed)
	}
	if s.store.EmailTaken(in.Email) {
		return "", nil, ErrUserAlreadyExists
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return "", nil, err
	}

	user, ok := s.store.RegisterCoach(domain.CoachRegistration{
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.TrimSpace(in.Email),
		Phone:           in.Phone,
		Specialty:       in.Specialty,
		Bio:             in.Bio,
		ExperienceYears: in.ExperienceYears,
		ClientsHelped:   in.ClientsHelped,
		Avatar:          in.Avatar,
		PasswordHash:    hash,
	})
	if !ok {
		return "", nil, ErrUserAlreadyExists
	}
	return s.issue(user)
}

// Login starts a session by email. The password is checked only for accounts
// that were registered with one.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return "", nil, fmt.Errorf("%w: email is required", ErrValidationFailed)
	}
	if !s.store.Login(email, password) {
		return "", nil, ErrAuthenticationFailed
	}
	user, ok := s.store.CurrentUser()
	if !ok {
		return "", nil, ErrAuthenticationFailed
	}
	return s.issue(user)
}

func (s *authService) LoginAsGuest(ctx context.Context) (string, *domain.User, error) {
	return s.issue(s.store.LoginAsGuest())
}

func (s *authService) Logout(ctx context.Context) {
	s.store.Logout()
}

// CurrentUser returns the session user without credentials.
func (s *authService) CurrentUser(ctx context.Context) (*domain.User, error) {
	user, ok := s.store.CurrentUser()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	user.PasswordHash = ""
	return &user, nil
}

func (s *authService) SessionActive(userID string) bool {
	user, ok := s.store.CurrentUser()
	return ok && user.ID == userID
}

// issue signs a token for user and strips the password hash.
func (s *authService) issue(user domain.User) (string, *domain.User, error) {
	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	user.PasswordHash = ""
	return token, &user, nil
}

func hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

// --- JWT Helpers ---

func (s *authService) generateJWT(user domain.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "ny11",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ParseToken validates a signed token and returns its claims.
func (s *authService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// --- Session helpers shared by the services ---

// sessionUser returns the current session user, or ErrNotAuthenticated.
func sessionUser(st *store.Store) (domain.User, error) {
	user, ok := st.CurrentUser()
	if !ok {
		return domain.User{}, ErrNotAuthenticated
	}
	return user, nil
}

// memberUser is sessionUser that also rejects the guest identity.
func memberUser(st *store.Store) (domain.User, error) {
	user, err := sessionUser(st)
	if err != nil {
		return user, err
	}
	if user.IsGuest() {
		return user, ErrGuestNotAllowed
	}
	return user, nil
}
