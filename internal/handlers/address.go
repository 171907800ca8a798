package handlers

import (
	"contactbook/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Create address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        contactId  path  string  true  "Owning contact id"
// @Param        body  body   service.AddressRequest  true  "Address payload"
// @Success      200   {object}  map[string]interface{}  "data: address view"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/contacts/{contactId}/addresses [post]
// @Security     ApiTokenAuth
func (h *Handler) createAddress(c *gin.Context) {
	user, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	var req service.AddressRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	view, err := h.services.Addresses.Create(c.Request.Context(), user, c.Param("contactId"), req)
	if err != nil {
		h.respondServiceError(c, err, "address_create_failed")
		return
	}
	respondData(c, view)
}

// @Summary      List addresses of a contact
// @Tags         addresses
// @Produce      json
// @Param        contactId  path  string  true  "Owning contact id"
// @Success      200  {object}  map[string]interface{}  "data: address list"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/contacts/{contactId}/addresses [get]
// @Security     ApiTokenAuth
func (h *Handler) listAddresses(c *gin.Context) {
	user, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	views, err := h.services.Addresses.List(c.Request.Context(), user, c.Param("contactId"))
	if err != nil {
		h.respondServiceError(c, err, "address_list_failed")
		return
	}
	respondData(c, views)
}

// @Summary      Get address
// @Tags         addresses
// @Produce      json
// @Param        contactId  path  string  true  "Owning contact id"
// @Param        addressId  path  string  true  "Address id"
// @Success      200  {object}  map[string]interface{}  "data: address view"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/contacts/{contactId}/addresses/{addressId} [get]
// @Security     ApiTokenAuth
func (h *Handler) getAddress(c *gin.Context) {
	user, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	view, err := h.services.Addresses.Get(c.Request.Context(), user, c.Param("contactId"), c.Param("addressId"))
	if err != nil {
		h.respondServiceError(c, err, "address_get_failed")
		return
	}
	respondData(c, view)
}

// @Summary      Update address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        contactId  path  string  true  "Owning contact id"
// @Param        addressId  path  string  true  "Address id"
// @Param        body  body   service.AddressRequest  true  "Address payload"
// @Success      200   {object}  map[string]interface{}  "data: address view"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/contacts/{contactId}/addresses/{addressId} [put]
// @Security     ApiTokenAuth
func (h *Handler) updateAddress(c *gin.Context) {
	user, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	var req service.AddressRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	view, err := h.services.Addresses.Update(c.Request.Context(), user, c.Param("contactId"), c.Param("addressId"), req)
	if err != nil {
		h.respondServiceError(c, err, "address_update_failed")
		return
	}
	respondData(c, view)
}

// @Summary      Delete address
// @Tags         addresses
// @Produce      json
// @Param        contactId  path  string  true  "Owning contact id"
// @Param        addressId  path  string  true  "Address id"
// @Success      200  {object}  map[string]string  "data: OK"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/contacts/{contactId}/addresses/{addressId} [delete]
// @Security     ApiTokenAuth
func (h *Handler) deleteAddress(c *gin.Context) {
	user, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	if err := h.services.Addresses.Delete(c.Request.Context(), user, c.Param("contactId"), c.Param("addressId")); err != nil {
		h.respondServiceError(c, err, "address_delete_failed")
		return
	}
	respondData(c, "OK")
}
