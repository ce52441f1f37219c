package tests

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/library-service/internal/domain/models"
	"github.com/library-service/internal/server/mocks"
	storerrors "github.com/library-service/internal/storage/errors"
)

func TestServer_createBorrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)
	fixedNow := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return fixedNow }

	dueDate := time.Date(2024, 1, 24, 0, 0, 0, 0, time.UTC)

	t.Run("created, borrow date defaults to now", func(t *testing.T) {
		expected := models.BorrowRequest{
			BookID:     "book-1",
			BorrowerID: "borrower-1",
			BorrowDate: fixedNow,
			DueDate:    dueDate,
		}
		created := models.Borrow{
			BID:        "borrow-1",
			BookID:     expected.BookID,
			BorrowerID: expected.BorrowerID,
			BorrowDate: expected.BorrowDate,
			DueDate:    expected.DueDate,
		}
		mockStorage.EXPECT().CreateBorrow(expected).Return(created, nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest(http.MethodPost, "/borrows",
			`{"bookId":"book-1","borrowerId":"borrower-1","dueDate":"2024-01-24T00:00:00Z"}`)

		s.CreateBorrow(ctx)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "borrow-1")
	})

	t.Run("book not found", func(t *testing.T) {
		mockStorage.EXPECT().CreateBorrow(gomock.Any()).Return(models.Borrow{}, storerrors.ErrBookNotFound)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest(http.MethodPost, "/borrows",
			`{"bookId":"missing","borrowerId":"borrower-1","dueDate":"2024-01-24T00:00:00Z"}`)

		s.CreateBorrow(ctx)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Book not found")
	})

	t.Run("borrower not found", func(t *testing.T) {
		mockStorage.EXPECT().CreateBorrow(gomock.Any()).Return(models.Borrow{}, storerrors.ErrBorrowerNotFound)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest(http.MethodPost, "/borrows",
			`{"bookId":"book-1","borrowerId":"missing","dueDate":"2024-01-24T00:00:00Z"}`)

		s.CreateBorrow(ctx)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Borrower not found")
	})

	t.Run("no available copies is a 400", func(t *testing.T) {
		mockStorage.EXPECT().CreateBorrow(gomock.Any()).Return(models.Borrow{}, storerrors.ErrNoAvailableCopies)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest(http.MethodPost, "/borrows",
			`{"bookId":"book-1","borrowerId":"borrower-1","dueDate":"2024-01-24T00:00:00Z"}`)

		s.CreateBorrow(ctx)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No available copies")
	})

	t.Run("missing due date never reaches storage", func(t *testing.T) {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = jsonRequest(http.MethodPost, "/borrows", `{"bookId":"book-1","borrowerId":"borrower-1"}`)

		s.CreateBorrow(ctx)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_returnBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)

	t.Run("returned", func(t *testing.T) {
		mockStorage.EXPECT().ReturnBorrow("borrow-1").Return(nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "id", Value: "borrow-1"}}

		s.ReturnBook(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Book returned successfully")
	})

	t.Run("unknown borrow is a 404", func(t *testing.T) {
		mockStorage.EXPECT().ReturnBorrow("missing").Return(storerrors.ErrBorrowNotFound)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "id", Value: "missing"}}

		s.ReturnBook(ctx)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Borrow record not found")
	})

	t.Run("internal error", func(t *testing.T) {
		mockStorage.EXPECT().ReturnBorrow("borrow-1").Return(errors.New("db error"))

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "id", Value: "borrow-1"}}

		s.ReturnBook(ctx)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_dueBorrows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)
	fixedNow := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return fixedNow }

	t.Run("queries with the server clock", func(t *testing.T) {
		due := []models.BorrowDetails{{
			Borrow: models.Borrow{BID: "borrow-1", DueDate: fixedNow.AddDate(0, 0, -1)},
		}}
		mockStorage.EXPECT().GetDueBorrows(fixedNow).Return(due, nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)

		s.DueBorrows(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "borrow-1")
	})

	t.Run("nothing due is an empty array", func(t *testing.T) {
		mockStorage.EXPECT().GetDueBorrows(fixedNow).Return(nil, nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)

		s.DueBorrows(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}

func TestServer_borrowsByBorrower(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)
	s := newTestServer(mockStorage)

	t.Run("possibly empty list", func(t *testing.T) {
		mockStorage.EXPECT().GetBorrowsByBorrower("borrower-1").Return(nil, nil)

		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "borrowerId", Value: "borrower-1"}}

		s.BorrowsByBorrower(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}
