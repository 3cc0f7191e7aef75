package book

import (
	"errors"
	"io"
	"log"
	"net/http"

	"booksapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.Handle("/books", httpx.MethodMux(map[string]http.HandlerFunc{
		http.MethodGet:  h.List,
		http.MethodPost: h.Create,
	}))
	mux.Handle("/books/{isbn}", httpx.MethodMux(map[string]http.HandlerFunc{
		http.MethodGet:    h.GetByISBN,
		http.MethodPut:    h.Update,
		http.MethodDelete: h.Delete,
	}))
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"books": books})
}

// GetByISBN handles GET /books/{isbn}
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByISBN(r.Context(), r.PathValue("isbn"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"book": b})
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	in, messages := ValidateCreate(body)
	if len(messages) > 0 {
		httpx.Error(w, http.StatusBadRequest, messages)
		return
	}

	created, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"book": created})
}

// Update handles PUT /books/{isbn}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	in, messages := ValidateUpdate(body)
	if len(messages) > 0 {
		httpx.Error(w, http.StatusBadRequest, messages)
		return
	}

	updated, err := h.service.Update(r.Context(), r.PathValue("isbn"), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"book": updated})
}

// Delete handles DELETE /books/{isbn}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("isbn")); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "Book deleted"})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpx.Error(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return nil, false
		}
		httpx.Error(w, http.StatusBadRequest, "Could not read request body")
		return nil, false
	}
	return body, true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "ISBN not found")
	case errors.Is(err, ErrConflict):
		httpx.Error(w, http.StatusConflict, "A book with this ISBN already exists")
	case errors.Is(err, ErrISBNMismatch):
		httpx.Error(w, http.StatusBadRequest, []string{err.Error()})
	default:
		log.Printf("request failed: request_id=%s method=%s path=%s error=%v",
			httpx.RequestIDFrom(r), r.Method, r.URL.Path, err)
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
