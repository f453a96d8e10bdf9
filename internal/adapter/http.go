package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/msagdeev/go-fit-tracker/internal/config"
	"github.com/msagdeev/go-fit-tracker/internal/logger"
	"github.com/msagdeev/go-fit-tracker/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /register and returns the created account.
func (h *httpServerAdapter) Register(ctx context.Context, registration models.RegisterRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(registration).
		SetResult(&user).
		Post("/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials form-encoded to
// POST /login; the "username" form field carries the account email. On
// success the bearer token is stored via SetToken and returned.
func (h *httpServerAdapter) Login(ctx context.Context, email string, password string) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": email,
			"password": password,
		}).
		SetResult(&token).
		Post("/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(token.AccessToken)
	return token, nil
}

// GetCurrentUser implements [ServerAdapter]. It GETs /users/me.
func (h *httpServerAdapter) GetCurrentUser(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("get current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// GetUser implements [ServerAdapter]. It GETs /users/{id}.
func (h *httpServerAdapter) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/users/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// GetUserByEmail implements [ServerAdapter]. It GETs /users?email=.
func (h *httpServerAdapter) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("email", email).
		SetResult(&user).
		Get("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("get user by email request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser implements [ServerAdapter]. It PUTs the profile update to
// PUT /users/{id}.
func (h *httpServerAdapter) UpdateUser(ctx context.Context, userID int64, update models.UserUpdateRequest) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&user).
		Put("/users/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListFoods implements [ServerAdapter]. It GETs /foods?skip=&limit=.
// Zero-valued parameters are omitted so the server applies its defaults.
func (h *httpServerAdapter) ListFoods(ctx context.Context, skip, limit uint64) ([]models.Food, error) {
	req := h.client.R().SetContext(ctx)
	if skip > 0 {
		req.SetQueryParam("skip", strconv.FormatUint(skip, 10))
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}

	resp, err := req.Get("/foods")
	if err != nil {
		return nil, fmt.Errorf("list foods request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var foods []models.Food
	if err = json.Unmarshal(resp.Body(), &foods); err != nil {
		return nil, fmt.Errorf("decode foods response: %w", err)
	}

	return foods, nil
}

// CreateFoodLog implements [ServerAdapter]. It POSTs the intake payload to
// POST /foodlogs and returns the stored record with derived nutrition.
func (h *httpServerAdapter) CreateFoodLog(ctx context.Context, create models.FoodLogCreateRequest) (models.FoodLog, error) {
	var foodLog models.FoodLog

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(create).
		SetResult(&foodLog).
		Post("/foodlogs")
	if err != nil {
		return models.FoodLog{}, fmt.Errorf("create food log request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FoodLog{}, err
	}

	return foodLog, nil
}

// ListFoodLogs implements [ServerAdapter]. It GETs /users/{id}/foodlogs.
func (h *httpServerAdapter) ListFoodLogs(ctx context.Context, userID int64) ([]models.FoodLogEntry, error) {
	resp, err := h.authedRequest(ctx).
		Get("/users/" + strconv.FormatInt(userID, 10) + "/foodlogs")
	if err != nil {
		return nil, fmt.Errorf("list food logs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.FoodLogEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode food logs response: %w", err)
	}

	return entries, nil
}

// CreateProgress implements [ServerAdapter]. It POSTs the check-in payload
// to POST /progress.
func (h *httpServerAdapter) CreateProgress(ctx context.Context, create models.ProgressCreateRequest) (models.Progress, error) {
	var progress models.Progress

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(create).
		SetResult(&progress).
		Post("/progress")
	if err != nil {
		return models.Progress{}, fmt.Errorf("create progress request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Progress{}, err
	}

	return progress, nil
}

// ListProgress implements [ServerAdapter]. It GETs /progress/{id}; the id is
// the owning user's id.
func (h *httpServerAdapter) ListProgress(ctx context.Context, userID int64) ([]models.Progress, error) {
	resp, err := h.authedRequest(ctx).
		Get("/progress/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return nil, fmt.Errorf("list progress request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.Progress
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode progress response: %w", err)
	}

	return records, nil
}

// SeedFoods implements [ServerAdapter]. It POSTs to POST /seed-foods.
func (h *httpServerAdapter) SeedFoods(ctx context.Context) (models.MessageResponse, error) {
	var message models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&message).
		Post("/seed-foods")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("seed foods request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return message, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
