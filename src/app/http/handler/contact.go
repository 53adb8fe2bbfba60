// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing and validating HTTP requests
// - Calling use case methods
// - Converting results to HTTP responses
//
// Handlers never write error responses: failures are attached with c.Error
// and translated by middleware.ErrorHandler.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"phonebook/src/app/http/dto"
	"phonebook/src/app/http/response"
	"phonebook/src/core/ports"
)

// ContactHandler handles the /contacts endpoints.
type ContactHandler struct {
	contactService ports.ContactService
}

func NewContactHandler(contactService ports.ContactService) *ContactHandler {
	useJSONFieldNames()
	return &ContactHandler{contactService: contactService}
}

// Register mounts the contact routes on r.
func (h *ContactHandler) Register(r gin.IRoutes) {
	r.GET("/contacts", h.List)
	r.GET("/contacts/:id", h.Get)
	r.POST("/contacts", h.Create)
	r.PUT("/contacts/:id", h.Update)
	r.DELETE("/contacts/:id", h.Delete)
}

// List returns every contact.
//
//	@Summary	List contacts
//	@Tags		contacts
//	@Produce	json
//	@Success	200	{array}		ports.ContactDto
//	@Failure	500	{object}	response.Error
//	@Router		/contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactService.GetAllContacts(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, contacts)
}

// Get returns one contact.
//
//	@Summary	Get a contact
//	@Tags		contacts
//	@Produce	json
//	@Param		id	path		int	true	"Contact ID"
//	@Success	200	{object}	ports.ContactDto
//	@Failure	400	{object}	response.Error
//	@Failure	404	{object}	response.Error
//	@Failure	500	{object}	response.Error
//	@Router		/contacts/{id} [get]
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	contact, err := h.contactService.GetContactByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, contact)
}

// Create adds a contact.
//
//	@Summary	Create a contact
//	@Tags		contacts
//	@Accept		json
//	@Produce	json
//	@Param		contact	body		dto.CreateContactRequest	true	"Contact"
//	@Success	201		{object}	ports.ContactDto
//	@Header		201		{string}	Location	"/contacts/{id}"
//	@Failure	400		{object}	response.Error
//	@Failure	500		{object}	response.Error
//	@Router		/contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	created, err := h.contactService.CreateContact(c.Request.Context(), req.ToInput())
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "/contacts/"+strconv.FormatInt(created.ID, 10), created)
}

// Update overwrites a contact's name and phone number.
//
//	@Summary	Update a contact
//	@Tags		contacts
//	@Accept		json
//	@Param		id		path	int							true	"Contact ID"
//	@Param		contact	body	dto.CreateContactRequest	true	"Contact"
//	@Success	204
//	@Failure	400	{object}	response.Error
//	@Failure	404	{object}	response.Error
//	@Failure	500	{object}	response.Error
//	@Router		/contacts/{id} [put]
func (h *ContactHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	var req dto.CreateContactRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	if err := h.contactService.UpdateContact(c.Request.Context(), id, req.ToInput()); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}

// Delete removes a contact.
//
//	@Summary	Delete a contact
//	@Tags		contacts
//	@Param		id	path	int	true	"Contact ID"
//	@Success	204
//	@Failure	400	{object}	response.Error
//	@Failure	404	{object}	response.Error
//	@Failure	500	{object}	response.Error
//	@Router		/contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.contactService.DeleteContact(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}

// fail hands err to the error middleware and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
