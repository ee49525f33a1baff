package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/flood_response_system/internal/service"
	"github.com/shenikar/flood_response_system/internal/session"
)

const (
	sessionCookieName = "session_token"

	ctxSessionKey = "session"
	ctxTokenKey   = "sessionToken"
)

// sessionFromRequest читает cookie сессии и ищет ее в хранилище.
// Возвращает nil без ошибки, если cookie нет или сессия истекла.
func (h *Handler) sessionFromRequest(c *gin.Context) (*session.Session, string, error) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		return nil, "", nil
	}

	sess, err := h.sessions.Get(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, "", nil
		}
		return nil, "", err
	}
	return sess, token, nil
}

// requireRole - middleware проверки сессии и роли пользователя
func (h *Handler) requireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		sess, token, err := h.sessionFromRequest(c)
		if err != nil {
			h.logger.WithError(err).Error("Failed to load session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if _, ok := allowed[sess.Role]; !ok {
			h.logger.WithFields(map[string]interface{}{
				"username": sess.Username,
				"role":     sess.Role,
				"path":     c.FullPath(),
			}).Warn("Access denied for role")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(ctxSessionKey, sess)
		c.Set(ctxTokenKey, token)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(ctxSessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}

// @Summary Log in
// @Description Authenticate with one of the fixed role accounts and receive a session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	sess, token, err := h.auth.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid username or password"})
			return
		}
		log.WithError(err).Error("Failed to create session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.SetCookie(sessionCookieName, token, int(h.cfg.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		User:    UserResponse{Username: sess.Username, Role: sess.Role},
	})
}

// @Summary Log out
// @Description Destroy the current session. Safe to call without a session.
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /logout [post]
func (h *Handler) logout(c *gin.Context) {
	token, _ := c.Cookie(sessionCookieName)
	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		h.logger.WithField("method", "logout").WithError(err).Error("Failed to destroy session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Session status
// @Description Report whether the caller holds a valid session.
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]bool
// @Router /api/auth/status [get]
func (h *Handler) authStatus(c *gin.Context) {
	sess, _, err := h.sessionFromRequest(c)
	if err != nil {
		h.logger.WithField("method", "authStatus").WithError(err).Error("Failed to load session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          UserResponse{Username: sess.Username, Role: sess.Role},
	})
}

// @Summary Current user profile
// @Tags Auth
// @Produce json
// @Security SessionAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/user/profile [get]
func (h *Handler) userProfile(c *gin.Context) {
	sess := currentSession(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, UserResponse{Username: sess.Username, Role: sess.Role})
}
