package handlers

import (
	"net/http"

	"github.com/ghuser/catalog/pkg/errhttp"
	"github.com/ghuser/catalog/pkg/httpx"
	appsvcs "github.com/ghuser/catalog/services/item/application/services"
)

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists catalog items, optionally filtered by name substring.
//
//	@Summary		List items
//	@Description	Lists all catalog items; the optional name parameter keeps only items whose name contains it (case-insensitive)
//	@Tags			items
//	@Produce		json
//	@Param			name	query		string	false	"Case-insensitive name substring filter"
//	@Success		200		{array}		ItemResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.List(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]ItemResponse, len(items))
	for i, item := range items {
		resp[i] = toItemResponse(item)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
