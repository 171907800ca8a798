package handlers

import (
	"errors"
	"net/http"

	"contactbook/internal/models"
	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

// apiTokenHeader carries the raw session token. No bearer scheme: the header
// value is the token itself.
const apiTokenHeader = "X-API-TOKEN"

const userCtxKey = "currentUser"

// authMiddleware resolves the session token to a user before any handler logic
// runs. Missing, unknown and expired tokens all answer the same generic 401; a
// failing credential store is a 500, not a rejection.
func (h *Handler) authMiddleware(c *gin.Context) {
	token := c.GetHeader(apiTokenHeader)

	user, err := h.services.Authorization.Authenticate(c.Request.Context(), token)
	if err != nil {
		if !errors.Is(err, service.ErrUnauthorized) {
			if h.log != nil {
				h.log.Errorw("authenticate_failed", "err", err)
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, webResponse{Errors: msgInternal})
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, webResponse{Errors: msgUnauthorized})
		return
	}

	c.Set(userCtxKey, user)
	c.Next()
}

// currentUser fetches the identity the middleware stored for this request.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok && u != nil
}

// mustCurrentUser is for handlers behind authMiddleware; a missing identity
// there means broken route wiring, answered as 401 rather than a panic.
func (h *Handler) mustCurrentUser(c *gin.Context) (*models.User, bool) {
	u, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, msgUnauthorized)
	}
	return u, ok
}
