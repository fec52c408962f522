package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voicebrief/internal/api/flash"
	"voicebrief/internal/api/middleware"
	"voicebrief/internal/api/v1/dto"
	"voicebrief/internal/app/auth"
	"voicebrief/internal/app/session"
)

// AuthHandler serves the signup/login/logout form flow.
type AuthHandler struct {
	auth     *auth.Service
	sessions *session.Manager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		auth:     authService,
		sessions: sessions,
	}
}

// SignupForm handles GET /signup
func (h *AuthHandler) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"flash": flash.Pop(c)})
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := middleware.ValidateForm(c, &req); err != nil {
		flash.Set(c, "Please fill in all fields with a valid email")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	err := h.auth.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) {
			flash.Set(c, "Username already exists, please choose a different one")
			c.Redirect(http.StatusFound, "/signup")
			return
		}
		middleware.HandleError(c, err)
		return
	}

	flash.Set(c, "Signup successful, please log in")
	c.Redirect(http.StatusFound, "/login")
}

// LoginForm handles GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"flash": flash.Pop(c)})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := middleware.ValidateForm(c, &req); err != nil {
		flash.Set(c, "Invalid username or password")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	username, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			flash.Set(c, "Invalid username or password")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		middleware.HandleError(c, err)
		return
	}

	if err := h.sessions.SetCookie(c.Writer, username); err != nil {
		middleware.HandleError(c, err)
		return
	}

	flash.Set(c, "Login successful")
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c.Writer)
	flash.Set(c, "You have been logged out")
	c.Redirect(http.StatusFound, "/")
}
