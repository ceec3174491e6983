package handlers

import (
	"net/http"

	"github.com/ghuser/catalog/pkg/errhttp"
	pkgvalidator "github.com/ghuser/catalog/pkg/validator"
	appsvcs "github.com/ghuser/catalog/services/item/application/services"
)

// UpdateItemRequest is the request body for PUT /items/{id}.
// ID and created_at are never caller-supplied.
type UpdateItemRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=255" example:"Iron Sword"`
	Description string  `json:"description" validate:"omitempty,max=500"      example:"An upgraded blade"`
	Price       float64 `json:"price"       validate:"gte=0"                  example:"24.99"`
} // @name UpdateItemRequest

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute replaces the mutable fields of an existing catalog item.
//
//	@Summary		Update item
//	@Description	Overwrites name, description and price of an existing item; ID and creation time are preserved
//	@Tags			items
//	@Accept			json
//	@Param			id		path	string				true	"Item ID"
//	@Param			request	body	UpdateItemRequest	true	"Item update request"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDFromURL(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Item.Update(r.Context(), id, req.Name, req.Description, req.Price); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
