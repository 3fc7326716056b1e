package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// Constants for context keys
const (
	ContextUserIDKey   = "userID"
	ContextUserRoleKey = "userRole"
)

// AuthMiddleware authenticates the bearer token and requires it to belong to
// the store's current session; a token from an ended session is rejected.
func AuthMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Token has expired")
			} else {
				abortWithError(c, http.StatusUnauthorized, fmt.Sprintf("Invalid token: %v", err))
			}
			return
		}

		if !auth.SessionActive(claims.UserID) {
			abortWithError(c, http.StatusUnauthorized, "Session has ended, please log in again")
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUserRoleKey, claims.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware sets the user context when a valid token for the
// current session is present and lets every request through.
func OptionalAuthMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.Split(c.GetHeader("Authorization"), " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			if claims, err := auth.ParseToken(parts[1]); err == nil && auth.SessionActive(claims.UserID) {
				c.Set(ContextUserIDKey, claims.UserID)
				c.Set(ContextUserRoleKey, claims.Role)
			}
		}
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithServiceError maps a service error to its HTTP status.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, service.ErrInvalidProfile),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrInvalidQuote),
		errors.Is(err, domain.ErrInvalidQuoteStatus),
		errors.Is(err, service.ErrInvalidMarketItem),
		errors.Is(err, service.ErrInvalidTranslations),
		errors.Is(err, service.ErrInvalidLanguage),
		errors.Is(err, service.ErrInvalidPreference),
		errors.Is(err, service.ErrInvalidUploadPurpose),
		errors.Is(err, service.ErrUnsupportedContentType):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed),
		errors.Is(err, service.ErrNotAuthenticated),
		errors.Is(err, service.ErrInvalidToken):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrGuestNotAllowed),
		errors.Is(err, service.ErrForbidden):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrBannerNotFound),
		errors.Is(err, service.ErrCoachNotFound),
		errors.Is(err, service.ErrConversationNotFound),
		errors.Is(err, service.ErrQuoteNotFound),
		errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrInvalidItem),
		errors.Is(err, service.ErrNotInCart):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, service.ErrQuoteNotPending),
		errors.Is(err, service.ErrCartEmpty):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrStorageDisabled):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	default:
		log.Printf("ERROR: %s %s: %v", c.Request.Method, c.FullPath(), err)
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// RoleMiddleware creates middleware to check if user has the required role(s).
// Must run AFTER AuthMiddleware.
func RoleMiddleware(allowedRoles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, err := getUserRoleFromContext(c)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, err.Error())
			return
		}

		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				c.Next()
				return
			}
		}
		abortWithError(c, http.StatusForbidden, fmt.Sprintf("Access denied: Role '%s' does not have permission", userRole))
	}
}

// Helper function to get User ID from context (used by handlers)
func getUserIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok {
		return "", errors.New("invalid user ID type in context")
	}
	return idStr, nil
}

// Helper function to get User Role from context (used by handlers)
func getUserRoleFromContext(c *gin.Context) (domain.Role, error) {
	roleRaw, exists := c.Get(ContextUserRoleKey)
	if !exists {
		return "", errors.New("user role not found in context")
	}
	role, ok := roleRaw.(domain.Role)
	if !ok {
		return "", errors.New("invalid user role type in context")
	}
	return role, nil
}
