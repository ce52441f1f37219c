package tests

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/library-service/internal/config"
	"github.com/library-service/internal/domain/models"
	"github.com/library-service/internal/server"
	"github.com/library-service/internal/server/mocks"
	storerrors "github.com/library-service/internal/storage/errors"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func newTestServer(stor server.Storage) *server.Server {
	return server.New(config.Config{}, stor)
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestServer_allBooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)

	t.Run("success", func(t *testing.T) {
		books := []models.Book{{Title: "Dune"}, {Title: "Dune Messiah"}}
		mockStorage.EXPECT().GetBooks().Return(books, nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)

		s.AllBooks(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Dune")
		assert.Contains(t, w.Body.String(), "Dune Messiah")
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		mockStorage.EXPECT().GetBooks().Return(nil, nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)

		s.AllBooks(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		mockStorage.EXPECT().GetBooks().Return(nil, errors.New("db error"))

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)

		s.AllBooks(ctx)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "db error")
	})
}

func TestServer_searchBooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)

	t.Run("case-insensitive substring match", func(t *testing.T) {
		books := []models.Book{{Title: "Dune Messiah"}}
		mockStorage.EXPECT().SearchBooks("dune", "", "").Return(books, nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest(http.MethodGet, "/books/search?title=dune", nil)

		s.SearchBooks(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Dune Messiah")
	})

	t.Run("zero matches is 404", func(t *testing.T) {
		mockStorage.EXPECT().SearchBooks("nothing", "", "").Return(nil, storerrors.ErrEmptyBooksList)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest(http.MethodGet, "/books/search?title=nothing", nil)

		s.SearchBooks(ctx)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "No matching books found")
	})

	t.Run("internal error", func(t *testing.T) {
		mockStorage.EXPECT().SearchBooks("", "herbert", "").Return(nil, errors.New("db error"))

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest(http.MethodGet, "/books/search?author=herbert", nil)

		s.SearchBooks(ctx)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_addBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)

	t.Run("created", func(t *testing.T) {
		book := models.Book{Title: "Dune", Author: "Frank Herbert", ISBN: "9780441013593", Quantity: 3}
		created := book
		created.BID = "b-1"
		created.AvailableCopies = 3
		mockStorage.EXPECT().SaveBook(book).Return(created, nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest(http.MethodPost, "/books",
			`{"title":"Dune","author":"Frank Herbert","isbn":"9780441013593","quantity":3}`)

		s.AddBook(ctx)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "b-1")
		assert.Contains(t, w.Body.String(), `"availableCopies":3`)
	})

	t.Run("missing isbn is a 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest(http.MethodPost, "/books", `{"title":"Dune","author":"Frank Herbert"}`)

		s.AddBook(ctx)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("duplicate isbn is a 500", func(t *testing.T) {
		mockStorage.EXPECT().SaveBook(gomock.Any()).Return(models.Book{}, storerrors.ErrDuplicateISBN)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest(http.MethodPost, "/books",
			`{"title":"Dune","author":"Frank Herbert","isbn":"9780441013593"}`)

		s.AddBook(ctx)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_updateBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)

	t.Run("success regardless of match", func(t *testing.T) {
		mockStorage.EXPECT().UpdateBook("123", gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "id", Value: "123"}}
		ctx.Request = jsonRequest(http.MethodPut, "/books/123", `{"title":"Dune (reissue)"}`)

		s.UpdateBook(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Book updated")
	})

	t.Run("internal error", func(t *testing.T) {
		mockStorage.EXPECT().UpdateBook("123", gomock.Any()).Return(errors.New("db error"))

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "id", Value: "123"}}
		ctx.Request = jsonRequest(http.MethodPut, "/books/123", `{"title":"Dune"}`)

		s.UpdateBook(ctx)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_removeBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)

	t.Run("success regardless of match", func(t *testing.T) {
		mockStorage.EXPECT().DeleteBook("123").Return(nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "id", Value: "123"}}

		s.RemoveBook(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Book deleted")
	})

	t.Run("internal error", func(t *testing.T) {
		mockStorage.EXPECT().DeleteBook("123").Return(errors.New("db error"))

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "id", Value: "123"}}

		s.RemoveBook(ctx)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
