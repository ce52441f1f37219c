package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/library-service/internal/domain/consts"
	"github.com/library-service/internal/domain/models"
	"github.com/library-service/internal/logger"
	storerrors "github.com/library-service/internal/storage/errors"
)

// MemStorage is the in-memory fallback used when the database is not
// reachable. The mutex is the serialization point for the borrow
// transaction: two requests cannot both take the last copy.
type MemStorage struct {
	mu        sync.Mutex
	books     map[string]models.Book
	borrowers map[string]models.Borrower
	borrows   map[string]models.Borrow
}

func New() *MemStorage {
	return &MemStorage{
		books:     make(map[string]models.Book),
		borrowers: make(map[string]models.Borrower),
		borrows:   make(map[string]models.Borrow),
	}
}

func (ms *MemStorage) SaveBook(book models.Book) (models.Book, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, b := range ms.books {
		if b.ISBN == book.ISBN {
			return models.Book{}, storerrors.ErrDuplicateISBN
		}
	}
	if book.Quantity == 0 {
		book.Quantity = consts.DefaultQuantity
	}
	book.BID = uuid.New().String()
	book.AvailableCopies = book.Quantity
	now := time.Now()
	book.CreatedAt = now
	book.UpdatedAt = now
	ms.books[book.BID] = book
	return book, nil
}

func (ms *MemStorage) GetBooks() ([]models.Book, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	books := make([]models.Book, 0, len(ms.books))
	for _, book := range ms.books {
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].BID < books[j].BID })
	return books, nil
}

func (ms *MemStorage) GetBook(bid string) (models.Book, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.getBook(bid)
}

func (ms *MemStorage) getBook(bid string) (models.Book, error) {
	book, ok := ms.books[bid]
	if !ok {
		return models.Book{}, storerrors.ErrBookNotFound
	}
	return book, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (ms *MemStorage) SearchBooks(title, author, isbn string) ([]models.Book, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	var result []models.Book
	for _, book := range ms.books {
		if title != "" && !containsFold(book.Title, title) {
			continue
		}
		if author != "" && !containsFold(book.Author, author) {
			continue
		}
		if isbn != "" && !containsFold(book.ISBN, isbn) {
			continue
		}
		result = append(result, book)
	}
	if len(result) == 0 {
		return nil, storerrors.ErrEmptyBooksList
	}
	sort.Slice(result, func(i, j int) bool { return result[i].BID < result[j].BID })
	return result, nil
}

func (ms *MemStorage) UpdateBook(bid string, upd models.BookUpdate) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	book, ok := ms.books[bid]
	if !ok {
		// unconditional success, matching the HTTP contract
		return nil
	}
	if upd.Title != nil {
		book.Title = *upd.Title
	}
	if upd.Author != nil {
		book.Author = *upd.Author
	}
	if upd.ISBN != nil {
		book.ISBN = *upd.ISBN
	}
	if upd.ShelfLocation != nil {
		book.ShelfLocation = *upd.ShelfLocation
	}
	if upd.Quantity != nil {
		book.Quantity = *upd.Quantity
		if book.AvailableCopies > book.Quantity {
			book.AvailableCopies = book.Quantity
		}
	}
	book.UpdatedAt = time.Now()
	ms.books[bid] = book
	return nil
}

func (ms *MemStorage) DeleteBook(bid string) error {
	log := logger.Get()
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, exists := ms.books[bid]; !exists {
		log.Warn().Str("bid", bid).Msg("book not found")
		return nil
	}
	delete(ms.books, bid)
	return nil
}

func (ms *MemStorage) SaveBorrower(borrower models.Borrower) (models.Borrower, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, b := range ms.borrowers {
		if b.Email == borrower.Email {
			return models.Borrower{}, storerrors.ErrDuplicateEmail
		}
	}
	borrower.BID = uuid.New().String()
	borrower.RegisteredDate = time.Now()
	ms.borrowers[borrower.BID] = borrower
	return borrower, nil
}

func (ms *MemStorage) GetBorrowers() ([]models.Borrower, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	borrowers := make([]models.Borrower, 0, len(ms.borrowers))
	for _, b := range ms.borrowers {
		borrowers = append(borrowers, b)
	}
	sort.Slice(borrowers, func(i, j int) bool { return borrowers[i].BID < borrowers[j].BID })
	return borrowers, nil
}

func (ms *MemStorage) DeleteBorrower(bid string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.borrowers, bid)
	return nil
}

func (ms *MemStorage) CreateBorrow(req models.BorrowRequest) (models.Borrow, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	book, ok := ms.books[req.BookID]
	if !ok {
		return models.Borrow{}, storerrors.ErrBookNotFound
	}
	if book.AvailableCopies < 1 {
		return models.Borrow{}, storerrors.ErrNoAvailableCopies
	}
	if _, ok := ms.borrowers[req.BorrowerID]; !ok {
		return models.Borrow{}, storerrors.ErrBorrowerNotFound
	}

	book.AvailableCopies--
	book.UpdatedAt = time.Now()
	ms.books[req.BookID] = book

	borrow := models.Borrow{
		BID:        uuid.New().String(),
		BookID:     req.BookID,
		BorrowerID: req.BorrowerID,
		BorrowDate: req.BorrowDate,
		DueDate:    req.DueDate,
	}
	ms.borrows[borrow.BID] = borrow
	return borrow, nil
}

func (ms *MemStorage) ReturnBorrow(bid string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	borrow, ok := ms.borrows[bid]
	if !ok {
		return storerrors.ErrBorrowNotFound
	}
	// a book deleted out of band is not an error on return
	if book, ok := ms.books[borrow.BookID]; ok {
		book.AvailableCopies++
		if book.AvailableCopies > book.Quantity {
			book.AvailableCopies = book.Quantity
		}
		book.UpdatedAt = time.Now()
		ms.books[borrow.BookID] = book
	}
	delete(ms.borrows, bid)
	return nil
}

func (ms *MemStorage) details(borrow models.Borrow) models.BorrowDetails {
	d := models.BorrowDetails{Borrow: borrow}
	if book, ok := ms.books[borrow.BookID]; ok {
		d.Book = book
	}
	if borrower, ok := ms.borrowers[borrow.BorrowerID]; ok {
		d.Borrower = borrower
	}
	return d
}

func (ms *MemStorage) collect(keep func(models.Borrow) bool) []models.BorrowDetails {
	var details []models.BorrowDetails
	for _, borrow := range ms.borrows {
		if keep(borrow) {
			details = append(details, ms.details(borrow))
		}
	}
	sort.Slice(details, func(i, j int) bool { return details[i].BID < details[j].BID })
	return details
}

func (ms *MemStorage) GetBorrows() ([]models.BorrowDetails, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.collect(func(models.Borrow) bool { return true }), nil
}

func (ms *MemStorage) GetBorrowsByBorrower(borrowerID string) ([]models.BorrowDetails, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.collect(func(b models.Borrow) bool { return b.BorrowerID == borrowerID }), nil
}

func (ms *MemStorage) GetDueBorrows(now time.Time) ([]models.BorrowDetails, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.collect(func(b models.Borrow) bool { return !b.DueDate.After(now) }), nil
}

func (ms *MemStorage) GetBorrowsInPeriod(start, end time.Time) ([]models.BorrowDetails, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.collect(func(b models.Borrow) bool {
		return !b.BorrowDate.Before(start) && !b.BorrowDate.After(end)
	}), nil
}

func (ms *MemStorage) GetOverdueInPeriod(start, end time.Time) ([]models.BorrowDetails, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.collect(func(b models.Borrow) bool {
		return !b.DueDate.After(end) && !b.BorrowDate.Before(start)
	}), nil
}
