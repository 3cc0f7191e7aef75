package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"booksapi/internal/book"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newTestRouter(t *testing.T, db pinger) (*http.ServeMux, *book.MockRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := book.NewMockRepository(ctrl)
	handler := book.NewHTTPHandler(book.NewService(mockRepo))
	return newRouter(handler, db), mockRepo
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t, fakePinger{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestRouter_Ready(t *testing.T) {
	t.Run("db up", func(t *testing.T) {
		router, _ := newTestRouter(t, fakePinger{})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("db down", func(t *testing.T) {
		router, _ := newTestRouter(t, fakePinger{err: errors.New("connection refused")})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRouter_BookRoutes(t *testing.T) {
	router, mockRepo := newTestRouter(t, fakePinger{})

	mockRepo.EXPECT().List(gomock.Any()).Return([]book.Book{}, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	mockRepo.EXPECT().GetByISBN(gomock.Any(), "1234567890").Return(book.Book{}, book.ErrNotFound)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/1234567890", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_UnknownPath(t *testing.T) {
	router, _ := newTestRouter(t, fakePinger{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authors", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Not Found","status":404}}`, w.Body.String())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t, fakePinger{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/books/1234567890", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "DELETE, GET, PUT", w.Header().Get("Allow"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/books", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
