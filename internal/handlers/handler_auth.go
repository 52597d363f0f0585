package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_api/internal/dto"
	"github.com/SscSPs/personal_finance_api/internal/middleware"
	"github.com/SscSPs/personal_finance_api/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const defaultAuthRateLimit = "5-M"

// authHandler handles sign-up, sign-in and the current-user lookup.
type authHandler struct {
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
}

func newAuthHandler(services *portssvc.ServiceContainer) *authHandler {
	return &authHandler{
		userService:        services.User,
		tokenService:       services.Token,
		googleOAuthService: services.GoogleOAuth,
	}
}

// registerAuthRoutes sets up /api/auth. Everything except /me is rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services)

	ipLimiter, err := middleware.NewMemoryLimiter(cfg.AuthRateLimit)
	if err != nil {
		slog.Warn("Invalid AUTH_RATE_LIMIT, using default",
			slog.String("value", cfg.AuthRateLimit), slog.String("error", err.Error()))
		ipLimiter, _ = middleware.NewMemoryLimiter(defaultAuthRateLimit)
	}
	limited := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", limited, h.register)
		auth.POST("/login", limited, h.login)
		auth.POST("/google/exchange-code", limited, h.exchangeCodeGoogle)
		auth.GET("/me", middleware.AuthMiddleware(cfg.JWTSecret), h.me)
	}
}

// register godoc
// @Summary Register new user
// @Description Creates a local user and returns it with an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.Envelope{data=dto.AuthResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope "Username or email already taken"
// @Failure 500 {object} dto.Envelope
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.User{
		Username:  strings.TrimSpace(req.Username),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, user)
}

// login godoc
// @Summary User login
// @Description Authenticates a user by email and password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.Envelope{data=dto.AuthResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 429 {object} dto.Envelope
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

// exchangeCodeGoogle godoc
// @Summary Exchange a Google authorization code for an access token
// @Description Exchanges the code with Google, validates the ID token and signs the user in, creating them on first use.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.Envelope{data=dto.AuthResponse}
// @Failure 400 {object} dto.Envelope "Invalid authorization code"
// @Failure 401 {object} dto.Envelope "Invalid ID token"
// @Failure 504 {object} dto.Envelope "Google could not be reached"
// @Router /auth/google/exchange-code [post]
func (h *authHandler) exchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if !bindJSON(c, &req) {
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		lower := strings.ToLower(err.Error())
		if strings.Contains(lower, "invalid_grant") || strings.Contains(lower, "bad request") {
			respondError(c, apperrors.NewBadRequestError("Invalid or expired authorization code"))
			return
		}
		respondError(c, apperrors.NewGatewayTimeoutError("Failed to communicate with Google OAuth service"))
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		respondError(c, apperrors.NewInternalServerError("Failed to retrieve ID token from Google"))
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		respondError(c, apperrors.NewAppError(http.StatusUnauthorized, "Invalid Google ID token", err))
		return
	}

	email, _ := payload.Claims["email"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	identity := portssvc.ExternalIdentity{
		Provider:       domain.ProviderGoogle,
		ProviderUserID: payload.Subject,
		Email:          strings.ToLower(email),
		EmailVerified:  emailVerified,
	}
	if given, ok := payload.Claims["given_name"].(string); ok && given != "" {
		identity.FirstName = &given
	}
	if family, ok := payload.Claims["family_name"].(string); ok && family != "" {
		identity.LastName = &family
	}
	if identity.Email == "" || identity.ProviderUserID == "" {
		logger.Error("Essential claims missing from Google ID token", slog.Any("claims", payload.Claims))
		respondError(c, apperrors.NewInternalServerError("Essential user information missing from Google token"))
		return
	}

	user, err := h.userService.FindOrCreateExternalUser(ctx, identity)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User signed in via Google", slog.Int64("user_id", user.ID))
	h.respondWithToken(c, http.StatusOK, user)
}

// me godoc
// @Summary Current user
// @Description Returns the authenticated user.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 401 {object} dto.Envelope
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user)))
}

func (h *authHandler) respondWithToken(c *gin.Context, status int, user *domain.User) {
	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, dto.OK(dto.AuthResponse{User: dto.ToUserResponse(user), Token: token}))
}
