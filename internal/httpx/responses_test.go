package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusCreated, map[string]string{"key": "value"})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("Expected Content-Type application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["key"] != "value" {
		t.Errorf("Expected key=value, got %q", body["key"])
	}
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()

	JSONError(w, http.StatusBadRequest, "DUPLICATE_ISBN", "book with ISBN 1234567890 already exists", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Success {
		t.Error("Expected success to be false")
	}
	if response.Error.Code != "DUPLICATE_ISBN" {
		t.Errorf("Expected code DUPLICATE_ISBN, got %q", response.Error.Code)
	}
}

func TestJSONError_WithDetails(t *testing.T) {
	w := httptest.NewRecorder()

	details := []ErrorDetail{{Field: "title", Message: "title is required"}}
	JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)

	var response ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Error.Details) != 1 {
		t.Fatalf("Expected 1 detail, got %d", len(response.Error.Details))
	}
	if response.Error.Details[0].Field != "title" {
		t.Errorf("Expected field title, got %q", response.Error.Details[0].Field)
	}
}
