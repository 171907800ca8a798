package handlers

import (
	"net/http"
	"strconv"

	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage = 0
	defaultSize = 10

	errPageInvalid = "invalid 'page'; must be an integer"
	errSizeInvalid = "invalid 'size'; must be an integer"
)

// @Summary      Create contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body   service.ContactRequest  true  "Contact payload"
// @Success      200   {object}  map[string]interface{}  "data: contact view"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/contacts [post]
// @Security     ApiTokenAuth
func (h *Handler) createContact(c *gin.Context) {
	user, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	var req service.ContactRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	view, err := h.services.Contacts.Create(c.Request.Context(), user, req)
	if err != nil {
		h.respondServiceError(c, err, "contact_create_failed")
		return
	}
	respondData(c, view)
}

// @Summary      Get contact
// @Tags         contacts
// @Produce      json
// @Param        contactId  path  string  true  "Contact id"
// @Success      200  {object}  map[string]interface{}  "data: contact view"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/contacts/{contactId} [get]
// @Security     ApiTokenAuth
func (h *Handler) getContact(c *gin.Context) {
	user, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	view, err := h.services.Contacts.Get(c.Request.Context(), user, c.Param("contactId"))
	if err != nil {
		h.respondServiceError(c, err, "contact_get_failed")
		return
	}
	respondData(c, view)
}

// @Summary      Update contact
// @Description  Full replacement of the mutable fields.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        contactId  path  string  true  "Contact id"
// @Param        body  body   service.ContactRequest  true  "Contact payload"
// @Success      200   {object}  map[string]interface{}  "data: contact view"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/contacts/{contactId} [put]
// @Security     ApiTokenAuth
func (h *Handler) updateContact(c *gin.Context) {
	user, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	var req service.ContactRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	view, err := h.services.Contacts.Update(c.Request.Context(), user, c.Param("contactId"), req)
	if err != nil {
		h.respondServiceError(c, err, "contact_update_failed")
		return
	}
	respondData(c, view)
}

// @Summary      Delete contact
// @Tags         contacts
// @Produce      json
// @Param        contactId  path  string  true  "Contact id"
// @Success      200  {object}  map[string]string  "data: OK"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/contacts/{contactId} [delete]
// @Security     ApiTokenAuth
func (h *Handler) deleteContact(c *gin.Context) {
	user, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	if err := h.services.Contacts.Delete(c.Request.Context(), user, c.Param("contactId")); err != nil {
		h.respondServiceError(c, err, "contact_delete_failed")
		return
	}
	respondData(c, "OK")
}

// @Summary      Search contacts
// @Description  Optional substring filters over the caller's own contacts; matching is ASCII case-insensitive (SQLite LIKE).
// @Tags         contacts
// @Produce      json
// @Param        name   query  string  false  "Matches first or last name"
// @Param        email  query  string  false  "Matches email"
// @Param        phone  query  string  false  "Matches phone"
// @Param        page   query  int     false  "0-based page"  default(0)
// @Param        size   query  int     false  "Page size"     default(10)
// @Success      200  {object}  map[string]interface{}  "data: contact list; page: paging"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/contacts [get]
// @Security     ApiTokenAuth
func (h *Handler) searchContacts(c *gin.Context) {
	user, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}

	page, perr := intQuery(c, "page", defaultPage)
	if perr != nil {
		respondError(c, http.StatusBadRequest, errPageInvalid)
		return
	}
	size, serr := intQuery(c, "size", defaultSize)
	if serr != nil {
		respondError(c, http.StatusBadRequest, errSizeInvalid)
		return
	}

	result, err := h.services.Contacts.Search(c.Request.Context(), user, service.SearchFilter{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Phone: c.Query("phone"),
		Page:  page,
		Size:  size,
	})
	if err != nil {
		h.respondServiceError(c, err, "contact_search_failed")
		return
	}

	respondPaged(c, result.Items, paging{
		CurrentPage: result.Page,
		TotalPage:   result.TotalPages,
		Size:        result.Size,
	})
}

// intQuery parses an optional integer query parameter.
func intQuery(c *gin.Context, key string, def int) (int, error) {
	qs := c.Query(key)
	if qs == "" {
		return def, nil
	}
	return strconv.Atoi(qs)
}
