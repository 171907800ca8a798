package handlers

import (
	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Log in
// @Description  Exchanges username/password for an opaque session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   service.LoginRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "data: token, expiredAt"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req service.LoginRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	result, err := h.services.Authorization.Login(c.Request.Context(), req)
	if err != nil {
		if h.log != nil {
			h.log.Infow("login_failed", "username", req.Username, "err", err)
		}
		h.respondServiceError(c, err, "login_failed")
		return
	}
	respondData(c, result)
}

// @Summary      Log out
// @Description  Clears the current session token. Idempotent.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string  "data: OK"
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/logout [delete]
// @Security     ApiTokenAuth
func (h *Handler) logout(c *gin.Context) {
	user, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	if err := h.services.Authorization.Logout(c.Request.Context(), user); err != nil {
		h.respondServiceError(c, err, "logout_failed")
		return
	}
	respondData(c, "OK")
}
