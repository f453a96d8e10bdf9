package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/utils"
	"github.com/msagdeev/go-fit-tracker/models"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := parseIDParam(r)
	if err != nil {
		log.Err(err).Msg("invalid user id")
		utils.WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup failed")
		status, detail := mapServiceError(err)
		utils.WriteError(w, detail, status)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// getCurrentUser serves GET /users/me: the profile of the account the
// bearer token was issued for. The client uses it after login to learn who
// it is without interpreting the token itself.
func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("current user lookup failed")
		status, detail := mapServiceError(err)
		utils.WriteError(w, detail, status)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// getUserByEmail serves GET /users?email=. It is deliberately
// unauthenticated: the registration flow uses it to check whether an email
// is already taken before an account exists.
func (h *Handler) getUserByEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.URL.Query().Get("email")
	if email == "" {
		utils.WriteError(w, "email query parameter is required", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.GetUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Msg("user lookup by email failed")
		status, detail := mapServiceError(err)
		utils.WriteError(w, detail, status)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
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

	var update models.UserUpdateRequest
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user update failed")
		status, detail := mapServiceError(err)
		utils.WriteError(w, detail, status)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// parseIDParam reads the "{id}" chi URL parameter as an int64.
func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
