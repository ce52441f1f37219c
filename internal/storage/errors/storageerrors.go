package storerrors

import "errors"

var (
	ErrBookNotFound      = errors.New("Book not found")
	ErrBorrowerNotFound  = errors.New("Borrower not found")
	ErrBorrowNotFound    = errors.New("Borrow record not found")
	ErrNoAvailableCopies = errors.New("No available copies")
	ErrEmptyBooksList    = errors.New("No matching books found")
	ErrDuplicateISBN     = errors.New("book with this isbn already exists")
	ErrDuplicateEmail    = errors.New("borrower with this email already exists")
)
