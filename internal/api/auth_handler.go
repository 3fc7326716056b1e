package api

import (
	"log"
	"net/http"

	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"omitempty,min=8"`
	Avatar   string `json:"avatar" binding:"omitempty,url"`
}

type RegisterCoachRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Password        string `json:"password" binding:"omitempty,min=8"`
	Avatar          string `json:"avatar" binding:"required,url"`
	Specialty       string `json:"specialty" binding:"required"`
	Bio             string `json:"bio"`
	ExperienceYears int    `json:"experienceYears" binding:"min=0"`
	ClientsHelped   int    `json:"clientsHelped" binding:"min=0"`
}

// LoginRequest: accounts created without a password log in by email alone.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Handler Methods ---

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration details"
// @Success 201 {object} LoginResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 409 {object} gin.H "Conflict (email already exists)"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	token, user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, LoginResponse{Token: token, User: user})
}

// RegisterCoach godoc
// @Summary Register a coach account with its public profile
// @Tags Auth
// @Router /auth/register/coach [post]
func (h *AuthHandler) RegisterCoach(c *gin.Context) {
	var req RegisterCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	token, user, err := h.authService.RegisterCoach(c.Request.Context(), service.CoachRegisterInput{
		RegisterInput: service.RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Password: req.Password,
			Avatar:   req.Avatar,
		},
		Specialty:       req.Specialty,
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
		ClientsHelped:   req.ClientsHelped,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, LoginResponse{Token: token, User: user})
}

// Login godoc
// @Summary Log in a user
// @Description Starts the session and returns a JWT token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Login successful"
// @Failure 401 {object} gin.H "Unauthorized (invalid credentials)"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token, User: user})
}

func (h *AuthHandler) LoginAsGuest(c *gin.Context) {
	token, user, err := h.authService.LoginAsGuest(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token, User: user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID, _ := getUserIDFromContext(c)
	h.authService.Logout(c.Request.Context())
	log.Printf("INFO: user %s logged out", userID)
	c.Status(http.StatusNoContent)
}

// Me returns the session user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.CurrentUser(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
