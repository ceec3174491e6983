package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/catalog/pkg/httpx"
	"github.com/ghuser/catalog/services/item/domain/models"
)

// ItemResponse is the read projection of an Item returned by all read endpoints.
// Description is write-only and intentionally not part of the projection.
type ItemResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name"       example:"Bronze Sword"`
	Price     float64   `json:"price"      example:"19.99"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name.String(),
		Price:     item.Price.Float64(),
		CreatedAt: item.CreatedAt,
	}
}

// itemIDFromURL parses the {id} chi route parameter. On failure it writes a
// 400 response and returns false.
func itemIDFromURL(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return uuid.Nil, false
	}
	return id, true
}
