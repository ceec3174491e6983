package handlers

import (
	"net/http"

	"github.com/ghuser/catalog/pkg/errhttp"
	"github.com/ghuser/catalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/catalog/pkg/validator"
	appsvcs "github.com/ghuser/catalog/services/item/application/services"
)

// CreateItemRequest is the request body for POST /items.
type CreateItemRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=255" example:"Bronze Sword"`
	Description string  `json:"description" validate:"omitempty,max=500"      example:"A sturdy starter blade"`
	Price       float64 `json:"price"       validate:"gte=0"                  example:"19.99"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new catalog item.
//
//	@Summary		Create item
//	@Description	Creates a new catalog item with a generated ID and creation timestamp
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Header			201		{string}	Location	"URL of the created item"
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), req.Name, req.Description, req.Price)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.Header().Set("Location", "/api/items/"+item.ID.String())
	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
