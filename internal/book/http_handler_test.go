package book

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithMock(t *testing.T) (*HTTPHandler, *MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	return NewHTTPHandler(NewService(mockRepo)), mockRepo
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHTTPHandler_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newHandlerWithMock(t)
		mockRepo.EXPECT().List(gomock.Any(), ListParams{Skip: 0, Take: 10}).Return([]Book{{ID: 1, Title: "Test"}}, nil)
		mockRepo.EXPECT().Count(gomock.Any()).Return(1, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books?page=1&limit=10", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Len(t, body["data"], 1)
		meta := body["meta"].(map[string]any)
		assert.Equal(t, float64(1), meta["totalPages"])
	})

	t.Run("no pagination params returns everything", func(t *testing.T) {
		handler, mockRepo := newHandlerWithMock(t)
		mockRepo.EXPECT().List(gomock.Any(), ListParams{}).Return([]Book{{ID: 2}, {ID: 1}}, nil)
		mockRepo.EXPECT().Count(gomock.Any()).Return(2, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		meta := decodeBody(t, w)["meta"].(map[string]any)
		assert.Equal(t, float64(2), meta["limit"])
		assert.Equal(t, float64(1), meta["totalPages"])
	})

	t.Run("store failure", func(t *testing.T) {
		handler, mockRepo := newHandlerWithMock(t)
		mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded).AnyTimes()
		mockRepo.EXPECT().Count(gomock.Any()).Return(0, context.DeadlineExceeded).AnyTimes()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decodeBody(t, w)["message"])
	})
}

func TestHTTPHandler_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		handler, _ := newHandlerWithMock(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/abc", nil)
		r.SetPathValue("id", "abc")

		handler.Get(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid book id", decodeBody(t, w)["message"])
	})

	t.Run("not found", func(t *testing.T) {
		handler, mockRepo := newHandlerWithMock(t)
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/10", nil)
		r.SetPathValue("id", "10")

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book not found", decodeBody(t, w)["message"])
	})

	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newHandlerWithMock(t)
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(Book{ID: 10, Title: "Book"}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/10", nil)
		r.SetPathValue("id", "10")

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(10), decodeBody(t, w)["id"])
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		handler, mockRepo := newHandlerWithMock(t)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *Book) error {
				b.ID = 1
				return nil
			})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books",
			strings.NewReader(`{"title":"T","author":"A","genre":"G","publishedYear":2024}`))

		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(1), body["id"])
		assert.Equal(t, "T", body["title"])
	})

	t.Run("missing title", func(t *testing.T) {
		handler, _ := newHandlerWithMock(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{}`))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Title is required", decodeBody(t, w)["message"])
	})

	t.Run("malformed body", func(t *testing.T) {
		handler, _ := newHandlerWithMock(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"title":`))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", decodeBody(t, w)["message"])
	})
}

func TestHTTPHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newHandlerWithMock(t)
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(Book{ID: 3}, nil)
		mockRepo.EXPECT().Update(gomock.Any(), int64(3), map[string]any{"title": "New"}).
			Return(Book{ID: 3, Title: "New"}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/books/3", strings.NewReader(`{"title":"New"}`))
		r.SetPathValue("id", "3")

		handler.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "New", decodeBody(t, w)["title"])
	})

	t.Run("empty patch", func(t *testing.T) {
		handler, mockRepo := newHandlerWithMock(t)
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(Book{ID: 1}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/books/1", strings.NewReader(`{}`))
		r.SetPathValue("id", "1")

		handler.Update(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No valid fields to update", decodeBody(t, w)["message"])
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newHandlerWithMock(t)
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(6)).Return(Book{ID: 6}, nil)
		mockRepo.EXPECT().Update(gomock.Any(), int64(6), gomock.Any()).Return(Book{ID: 6, IsDelete: true}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/books/6", nil)
		r.SetPathValue("id", "6")

		handler.Delete(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Book deleted", body["message"])
		assert.Equal(t, float64(6), body["bookId"])
	})

	t.Run("not found", func(t *testing.T) {
		handler, mockRepo := newHandlerWithMock(t)
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/books/5", nil)
		r.SetPathValue("id", "5")

		handler.Delete(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
