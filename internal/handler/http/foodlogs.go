package http

import (
	"encoding/json"
	"net/http"

	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/utils"
	"github.com/msagdeev/go-fit-tracker/models"
)

func (h *Handler) createFoodLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var create models.FoodLogCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if !h.authorizeOwner(w, r, create.UserID) {
		return
	}

	foodLog, err := h.services.FoodLogService.CreateFoodLog(ctx, create)
	if err != nil {
		log.Err(err).Int64("user_id", create.UserID).Msg("food log creation failed")
		status, detail := mapServiceError(err)
		utils.WriteError(w, detail, status)
		return
	}

	utils.WriteJSON(w, foodLog, http.StatusCreated)
}

func (h *Handler) listFoodLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := parseIDParam(r)
	if err != nil {
		log.Err(err).Msg("invalid user id")
		utils.WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if !h.authorizeOwner(w, r, userID) {
		return
	}

	entries, err := h.services.FoodLogService.ListFoodLogs(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("food log listing failed")
		status, detail := mapServiceError(err)
		utils.WriteError(w, detail, status)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
