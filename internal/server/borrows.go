package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/library-service/internal/domain/models"
	"github.com/library-service/internal/logger"
	storerrors "github.com/library-service/internal/storage/errors"
)

func (s *Server) AllBorrows(ctx *gin.Context) {
	borrows, err := s.Storage.GetBorrows()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if borrows == nil {
		borrows = []models.BorrowDetails{}
	}
	ctx.JSON(http.StatusOK, borrows)
}

// CreateBorrow lends one copy: 404 when the book or borrower is
// missing, 400 when no copies are left. The availability check and
// the decrement happen atomically inside the storage layer.
func (s *Server) CreateBorrow(ctx *gin.Context) {
	log := logger.Get()

	var req models.BorrowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := s.valid.Struct(req); err != nil {
		log.Debug().Err(err).Msg("borrow validation failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if req.BorrowDate.IsZero() {
		req.BorrowDate = s.Now()
	}

	borrow, err := s.Storage.CreateBorrow(req)
	if err != nil {
		switch {
		case errors.Is(err, storerrors.ErrBookNotFound), errors.Is(err, storerrors.ErrBorrowerNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		case errors.Is(err, storerrors.ErrNoAvailableCopies):
			ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusCreated, borrow)
}

func (s *Server) BorrowsByBorrower(ctx *gin.Context) {
	borrowerID := ctx.Param("borrowerId")
	borrows, err := s.Storage.GetBorrowsByBorrower(borrowerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if borrows == nil {
		borrows = []models.BorrowDetails{}
	}
	ctx.JSON(http.StatusOK, borrows)
}

func (s *Server) ReturnBook(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := s.Storage.ReturnBorrow(id); err != nil {
		if errors.Is(err, storerrors.ErrBorrowNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Book returned successfully"})
}

// DueBorrows lists every loan due at or before the current moment.
func (s *Server) DueBorrows(ctx *gin.Context) {
	borrows, err := s.Storage.GetDueBorrows(s.Now())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if borrows == nil {
		borrows = []models.BorrowDetails{}
	}
	ctx.JSON(http.StatusOK, borrows)
}
