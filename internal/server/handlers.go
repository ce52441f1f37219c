package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/library-service/internal/domain/models"
	"github.com/library-service/internal/logger"
	storerrors "github.com/library-service/internal/storage/errors"
)

func (s *Server) AllBooks(ctx *gin.Context) {
	books, err := s.Storage.GetBooks()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if books == nil {
		books = []models.Book{}
	}
	ctx.JSON(http.StatusOK, books)
}

// SearchBooks matches case-insensitive substrings on any of the
// supplied title/author/isbn query params. Zero matches is a 404.
func (s *Server) SearchBooks(ctx *gin.Context) {
	title := ctx.DefaultQuery("title", "")
	author := ctx.DefaultQuery("author", "")
	isbn := ctx.DefaultQuery("isbn", "")

	books, err := s.Storage.SearchBooks(title, author, isbn)
	if err != nil {
		if errors.Is(err, storerrors.ErrEmptyBooksList) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, books)
}

func (s *Server) AddBook(ctx *gin.Context) {
	log := logger.Get()

	var book models.Book
	if err := ctx.ShouldBindJSON(&book); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := s.valid.Struct(book); err != nil {
		log.Debug().Err(err).Msg("book validation failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	created, err := s.Storage.SaveBook(book)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateBook reports success whether or not the id matched a row.
func (s *Server) UpdateBook(ctx *gin.Context) {
	id := ctx.Param("id")

	var upd models.BookUpdate
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := s.Storage.UpdateBook(id, upd); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Book updated"})
}

// RemoveBook reports success whether or not the id matched a row.
func (s *Server) RemoveBook(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := s.Storage.DeleteBook(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Book deleted"})
}
