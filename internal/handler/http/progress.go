package http

import (
	"encoding/json"
	"net/http"

	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/utils"
	"github.com/msagdeev/go-fit-tracker/models"
)

func (h *Handler) createProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var create models.ProgressCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if !h.authorizeOwner(w, r, create.UserID) {
		return
	}

	progress, err := h.services.ProgressService.CreateProgress(ctx, create)
	if err != nil {
		log.Err(err).Int64("user_id", create.UserID).Msg("progress creation failed")
		status, detail := mapServiceError(err)
		utils.WriteError(w, detail, status)
		return
	}

	utils.WriteJSON(w, progress, http.StatusCreated)
}

// listProgress serves GET /progress/{id}; the id is the owning user's id,
// not a progress record id.
func (h *Handler) listProgress(w http.ResponseWriter, r *http.Request) {
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

	records, err := h.services.ProgressService.ListProgress(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("progress listing failed")
		status, detail := mapServiceError(err)
		utils.WriteError(w, detail, status)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}
