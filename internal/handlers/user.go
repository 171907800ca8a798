package handlers

import (
	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body   service.RegisterRequest  true  "New account"
// @Success      200   {object}  map[string]string  "data: OK"
// @Failure      400   {object}  map[string]string
// @Router       /api/users [post]
func (h *Handler) register(c *gin.Context) {
	var req service.RegisterRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.Authorization.Register(c.Request.Context(), req); err != nil {
		if h.log != nil {
			h.log.Infow("register_failed", "username", req.Username, "err", err)
		}
		h.respondServiceError(c, err, "register_failed")
		return
	}
	respondData(c, "OK")
}

// @Summary      Current user profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "data: user view"
// @Failure      401  {object}  map[string]string
// @Router       /api/user/current [get]
// @Security     ApiTokenAuth
func (h *Handler) getCurrentUser(c *gin.Context) {
	user, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	respondData(c, h.services.Users.Get(user))
}

// @Summary      Update current user
// @Description  Patch semantics: absent fields stay unchanged.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body   service.UpdateUserRequest  true  "Fields to change"
// @Success      200   {object}  map[string]interface{}  "data: user view"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/users/current [patch]
// @Security     ApiTokenAuth
func (h *Handler) updateCurrentUser(c *gin.Context) {
	user, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	view, err := h.services.Users.Update(c.Request.Context(), user, req)
	if err != nil {
		h.respondServiceError(c, err, "user_update_failed")
		return
	}
	respondData(c, view)
}
