package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/utils"
	"github.com/msagdeev/go-fit-tracker/models"
)

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	skip, err := parsePaginationParam(r, "skip", 0)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	limit, err := parsePaginationParam(r, "limit", 0)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	foods, err := h.services.FoodService.ListFoods(ctx, skip, limit)
	if err != nil {
		log.Err(err).Msg("food catalog listing failed")
		status, detail := mapServiceError(err)
		utils.WriteError(w, detail, status)
		return
	}

	utils.WriteJSON(w, foods, http.StatusOK)
}

func (h *Handler) seedFoods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	created, err := h.services.FoodService.SeedFoods(ctx)
	if err != nil {
		log.Err(err).Msg("food catalog seeding failed")
		status, detail := mapServiceError(err)
		utils.WriteError(w, detail, status)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf("Seeding complete, %d foods added", created),
	}, http.StatusOK)
}

// parsePaginationParam reads a non-negative integer query parameter, falling
// back to def when the parameter is absent.
func parsePaginationParam(r *http.Request, name string, def uint64) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}

	return value, nil
}
