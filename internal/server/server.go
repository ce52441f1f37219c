package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"github.com/library-service/internal/config"
	"github.com/library-service/internal/domain/models"
	"github.com/library-service/internal/logger"
)

//go:generate mockgen -source=server.go -destination=./mocks/storage_mock.go -package=mocks

type Storage interface {
	SaveBook(models.Book) (models.Book, error)
	GetBooks() ([]models.Book, error)
	SearchBooks(title, author, isbn string) ([]models.Book, error)
	UpdateBook(string, models.BookUpdate) error
	DeleteBook(string) error

	SaveBorrower(models.Borrower) (models.Borrower, error)
	GetBorrowers() ([]models.Borrower, error)
	DeleteBorrower(string) error

	CreateBorrow(models.BorrowRequest) (models.Borrow, error)
	ReturnBorrow(string) error
	GetBorrows() ([]models.BorrowDetails, error)
	GetBorrowsByBorrower(string) ([]models.BorrowDetails, error)
	GetDueBorrows(now time.Time) ([]models.BorrowDetails, error)
	GetBorrowsInPeriod(start, end time.Time) ([]models.BorrowDetails, error)
	GetOverdueInPeriod(start, end time.Time) ([]models.BorrowDetails, error)
}

type Server struct {
	serv    *http.Server
	valid   *validator.Validate
	Storage Storage
	// Now is the clock for due/report queries, swappable in tests.
	Now       func() time.Time
	authUser  string
	authPass  string
	rateLimit rate.Limit
}

func New(cfg config.Config, stor Storage) *Server {
	server := http.Server{ //nolint:gosec // not today
		Addr: cfg.Addr,
	}
	return &Server{
		serv:      &server,
		valid:     validator.New(),
		Storage:   stor,
		Now:       time.Now,
		authUser:  cfg.AuthUser,
		authPass:  cfg.AuthPass,
		rateLimit: rate.Limit(cfg.RateLimit),
	}
}

func (s *Server) ShutdownServer() error {
	return s.serv.Shutdown(context.Background())
}

func rateLimitMiddleware(limiter *rate.Limiter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !limiter.Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests, please try again later."})
			return
		}
		ctx.Next()
	}
}

func (s *Server) Run(ctx context.Context) error {
	log := logger.Get()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))
	router.Use(gin.BasicAuth(gin.Accounts{s.authUser: s.authPass}))

	bookLimiter := rate.NewLimiter(s.rateLimit, int(s.rateLimit))
	borrowLimiter := rate.NewLimiter(s.rateLimit, int(s.rateLimit))

	books := router.Group("/books")
	{
		books.GET("", s.AllBooks)
		books.GET("/search", s.SearchBooks)
		books.POST("", rateLimitMiddleware(bookLimiter), s.AddBook)
		books.PUT("/:id", rateLimitMiddleware(bookLimiter), s.UpdateBook)
		books.DELETE("/:id", rateLimitMiddleware(bookLimiter), s.RemoveBook)
	}
	borrowers := router.Group("/borrowers")
	{
		borrowers.GET("", s.AllBorrowers)
		borrowers.POST("", s.AddBorrower)
		borrowers.DELETE("/:id", s.RemoveBorrower)
	}
	borrows := router.Group("/borrows")
	{
		borrows.GET("", s.AllBorrows)
		borrows.POST("", rateLimitMiddleware(borrowLimiter), s.CreateBorrow)
		borrows.GET("/due", s.DueBorrows)
		borrows.GET("/borrower/:borrowerId", s.BorrowsByBorrower)
		borrows.POST("/:id/return", rateLimitMiddleware(borrowLimiter), s.ReturnBook)
	}
	reports := router.Group("/reports")
	{
		reports.GET("/borrows", s.BorrowReport)
		reports.GET("/overdue", s.OverdueReport)
	}

	s.serv.Handler = router
	log.Info().Str("host", s.serv.Addr).Msg("server started")
	if err := s.serv.ListenAndServe(); err != nil {
		return err
	}
	return nil
}
