package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/library-service/internal/domain/models"
	"github.com/library-service/internal/logger"
)

func (s *Server) AllBorrowers(ctx *gin.Context) {
	borrowers, err := s.Storage.GetBorrowers()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if borrowers == nil {
		borrowers = []models.Borrower{}
	}
	ctx.JSON(http.StatusOK, borrowers)
}

func (s *Server) AddBorrower(ctx *gin.Context) {
	log := logger.Get()

	var borrower models.Borrower
	if err := ctx.ShouldBindJSON(&borrower); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := s.valid.Struct(borrower); err != nil {
		log.Debug().Err(err).Msg("borrower validation failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	created, err := s.Storage.SaveBorrower(borrower)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (s *Server) RemoveBorrower(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := s.Storage.DeleteBorrower(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Borrower deleted"})
}
