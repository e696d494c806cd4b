package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/application/service"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/dto/request"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/dto/response"
	"github.com/jefdiaz/balanceone-api/pkg/oauth"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
	github      *oauth.GitHubOAuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, github *oauth.GitHubOAuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		github:      github,
	}
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Registration successful", authPayload(result))
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", authPayload(result))
}

// RefreshToken exchanges a refresh token for a new token pair
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed", authPayload(result))
}

// GetProfile returns the authenticated user's profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved", gin.H{"user": user})
}

// GitHubAuth redirects the user to the GitHub consent screen
func (h *AuthHandler) GitHubAuth(c *gin.Context) {
	state := uuid.New().String()
	url, err := h.authService.GitHubAuthURL(state)
	if err != nil {
		if errors.Is(err, oauth.ErrOAuthNotConfigured) {
			response.BadRequest(c, "GitHub OAuth is not configured")
			return
		}
		response.Error(c, err)
		return
	}

	c.SetCookie("oauth_state", state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GitHubCallback completes the GitHub OAuth flow and redirects to the
// frontend with the token pair.
func (h *AuthHandler) GitHubCallback(c *gin.Context) {
	state := c.Query("state")
	storedState, err := c.Cookie("oauth_state")
	if err != nil || state == "" || state != storedState {
		c.Redirect(http.StatusTemporaryRedirect, h.github.GetFrontendErrorURL()+"?error=invalid_state")
		return
	}

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, h.github.GetFrontendErrorURL()+"?error=missing_code")
		return
	}

	result, err := h.authService.GitHubCallback(c.Request.Context(), code)
	if err != nil {
		c.Redirect(http.StatusTemporaryRedirect, h.github.GetFrontendErrorURL()+"?error=oauth_failed")
		return
	}

	redirectURL := h.github.GetFrontendSuccessURL() +
		"?access_token=" + result.Tokens.AccessToken +
		"&refresh_token=" + result.Tokens.RefreshToken
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}

func authPayload(result *service.AuthResult) gin.H {
	return gin.H{
		"user": gin.H{
			"id":         result.User.ID,
			"first_name": result.User.FirstName,
			"last_name":  result.User.LastName,
			"email":      result.User.Email,
			"photo":      result.User.Photo,
		},
		"access_token":  result.Tokens.AccessToken,
		"refresh_token": result.Tokens.RefreshToken,
		"token_type":    "Bearer",
	}
}
