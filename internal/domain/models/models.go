package models

import "time"

type Book struct {
	BID             string    `json:"id,omitempty"`
	Title           string    `json:"title" validate:"required"`
	Author          string    `json:"author" validate:"required"`
	ISBN            string    `json:"isbn" validate:"required"`
	Quantity        int       `json:"quantity"`
	AvailableCopies int       `json:"availableCopies"`
	ShelfLocation   string    `json:"shelfLocation,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}

// BookUpdate carries a partial update; nil fields are left untouched.
type BookUpdate struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	ISBN          *string `json:"isbn"`
	Quantity      *int    `json:"quantity"`
	ShelfLocation *string `json:"shelfLocation"`
}

type Borrower struct {
	BID            string    `json:"id,omitempty"`
	Name           string    `json:"name" validate:"required"`
	Email          string    `json:"email" validate:"required,email"`
	RegisteredDate time.Time `json:"registeredDate,omitempty"`
}

type Borrow struct {
	BID        string     `json:"id,omitempty"`
	BookID     string     `json:"bookId"`
	BorrowerID string     `json:"borrowerId"`
	BorrowDate time.Time  `json:"borrowDate"`
	DueDate    time.Time  `json:"dueDate"`
	ReturnDate *time.Time `json:"returnDate,omitempty"`
}

// BorrowDetails is a Borrow joined with its Book and Borrower rows,
// the shape every listing and report endpoint returns.
type BorrowDetails struct {
	Borrow
	Book     Book     `json:"book"`
	Borrower Borrower `json:"borrower"`
}

// BorrowRequest is the body of POST /borrows. A zero BorrowDate means
// "now" and is filled in by the server before the storage call.
type BorrowRequest struct {
	BookID     string    `json:"bookId" validate:"required"`
	BorrowerID string    `json:"borrowerId" validate:"required"`
	BorrowDate time.Time `json:"borrowDate"`
	DueDate    time.Time `json:"dueDate" validate:"required"`
}
