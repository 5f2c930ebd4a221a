package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"booksvc/internal/httpx"

	"github.com/google/uuid"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// @Summary List books
// @Description Get all books, newest first, with pagination
// @Tags books
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(10)
// @Success 200 {object} pageResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize, details := paginationParams(r)
	if details != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid query parameters", details)
		return
	}

	books, total, err := h.service.List(r.Context(), page, pageSize)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, newPageResponse(page, pageSize, total, books))
}

// @Summary Search books
// @Description Case-insensitive substring search over title and author
// @Tags books
// @Produce json
// @Param q query string true "Search term"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(10)
// @Success 200 {object} pageResponse
// @Router /books/search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, pageSize, details := paginationParams(r)
	query := r.URL.Query().Get("q")
	if query == "" {
		details = append(details, httpx.ErrorDetail{Field: "q", Message: "q is required"})
	}
	if details != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid query parameters", details)
		return
	}

	books, total, err := h.service.Search(r.Context(), query, page, pageSize)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, newPageResponse(page, pageSize, total, books))
}

// @Summary Get book by id
// @Tags books
// @Produce json
// @Param id path string true "Book id (UUID)"
// @Success 200 {object} Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [get]
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} Book
// @Failure 400 {object} httpx.ErrorResponse "Duplicate ISBN"
// @Failure 422 {object} httpx.ErrorResponse "Malformed payload"
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid JSON payload", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	created, err := h.service.Create(r.Context(), req.toInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

// Update handles both PUT and PATCH /books/{id}. The two methods share the
// partial-update contract: only fields present in the body are applied.
//
// @Summary Update a book
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book id (UUID)"
// @Success 200 {object} Book
// @Failure 400 {object} httpx.ErrorResponse "Duplicate ISBN"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid JSON payload", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.toInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// @Summary Delete a book
// @Tags books
// @Param id path string true "Book id (UUID)"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if !deleted {
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID extracts and validates the {id} path segment. Non-UUID values are
// rejected as a validation failure before the service runs.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "id must be a valid UUID",
			[]httpx.ErrorDetail{{Field: "id", Message: "must be a valid UUID"}})
		return "", false
	}
	return id, true
}

// paginationParams validates page and page_size so out-of-bounds values never
// reach the service. Missing params fall back to page 1, size 10.
func paginationParams(r *http.Request) (page, pageSize int, details []httpx.ErrorDetail) {
	page = 1
	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			details = append(details, httpx.ErrorDetail{Field: "page", Message: "page must be an integer >= 1"})
		} else {
			page = n
		}
	}

	pageSize = 10
	if v := r.URL.Query().Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			details = append(details, httpx.ErrorDetail{Field: "page_size", Message: "page_size must be an integer between 1 and 100"})
		} else {
			pageSize = n
		}
	}
	return page, pageSize, details
}

func writeDomainError(w http.ResponseWriter, err error) {
	var dup *DuplicateISBNError
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	case errors.As(err, &dup):
		httpx.JSONError(w, http.StatusBadRequest, "DUPLICATE_ISBN", dup.Error(), nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
