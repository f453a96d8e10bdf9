package http

import (
	"encoding/json"
	"net/http"

	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/internal/utils"
	"github.com/msagdeev/go-fit-tracker/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var registration models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.UserService.Register(ctx, registration)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		status, detail := mapServiceError(err)
		utils.WriteError(w, detail, status)
		return
	}

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

// login authenticates a user and issues a bearer token. The credentials
// arrive form-encoded: the "username" field carries the account email.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data")
		utils.WriteError(w, "invalid form data", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.services.UserService.Authenticate(ctx, email, password)
	if err != nil {
		log.Err(err).Msg("authentication failed")
		status, detail := mapServiceError(err)
		utils.WriteError(w, detail, status)
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, user.UserID)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}
