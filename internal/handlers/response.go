package handlers

import (
	"errors"
	"net/http"

	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

// webResponse is the uniform envelope: data on success, errors on failure,
// page only on paginated lists.
type webResponse struct {
	Data   any     `json:"data,omitempty"`
	Errors string  `json:"errors,omitempty"`
	Page   *paging `json:"page,omitempty"`
}

type paging struct {
	CurrentPage int `json:"currentPage"`
	TotalPage   int `json:"totalPage"`
	Size        int `json:"size"`
}

// User-facing failure messages. 401 and 500 stay generic so responses never
// reveal whether an account, session or row exists.
const (
	msgUnauthorized    = "Unauthorized"
	msgContactNotFound = "Contact not found"
	msgAddressNotFound = "Address not found"
	msgInternal        = "internal server error"
	msgInvalidBody     = "invalid request body"
)

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, webResponse{Data: data})
}

func respondPaged(c *gin.Context, data any, p paging) {
	c.JSON(http.StatusOK, webResponse{Data: data, Page: &p})
}

func respondError(c *gin.Context, code int, msg string) {
	c.JSON(code, webResponse{Errors: msg})
}

// respondServiceError maps domain errors to statuses. Anything unrecognized is
// a storage-level failure: logged, answered with an opaque 500.
func (h *Handler) respondServiceError(c *gin.Context, err error, logKey string) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrUsernameTaken):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, msgUnauthorized)
	case errors.Is(err, service.ErrContactNotFound):
		respondError(c, http.StatusNotFound, msgContactNotFound)
	case errors.Is(err, service.ErrAddressNotFound):
		respondError(c, http.StatusNotFound, msgAddressNotFound)
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		respondError(c, http.StatusInternalServerError, msgInternal)
	}
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400
// envelope on failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		respondError(c, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}
