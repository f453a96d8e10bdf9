package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/msagdeev/go-fit-tracker/models"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	payload := map[string]string{"status": "ok"}

	_, err := WriteJSON(rec, payload, 201)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != 201 {
		t.Errorf("expected status 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", ct)
	}

	var decoded map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if decoded["status"] != "ok" {
		t.Errorf("expected status field 'ok', got %q", decoded["status"])
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(rec, make(chan int), 200)
	if err == nil {
		t.Fatal("expected marshal error, got nil")
	}
	if rec.Code != 500 {
		t.Errorf("expected status 500 on marshal failure, got %d", rec.Code)
	}
}

func TestWriteError_Shape(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, "Incorrect email or password", 401)

	if rec.Code != 401 {
		t.Errorf("expected status 401, got %d", rec.Code)
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Detail != "Incorrect email or password" {
		t.Errorf("unexpected detail: %q", body.Detail)
	}
}
