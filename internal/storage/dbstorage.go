package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/library-service/internal/domain/consts"
	"github.com/library-service/internal/domain/models"
	"github.com/library-service/internal/logger"
	storerrors "github.com/library-service/internal/storage/errors"
)

type DBStorage struct {
	pool *pgxpool.Pool
}

func NewDB(ctx context.Context, addr string) (*DBStorage, error) {
	config, err := pgxpool.ParseConfig(addr)
	if err != nil {
		return nil, err
	}
	config.MaxConns = 20
	config.MinConns = 2
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}
	return &DBStorage{pool: pool}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (dbs *DBStorage) SaveBook(book models.Book) (models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	if book.Quantity == 0 {
		book.Quantity = consts.DefaultQuantity
	}
	book.BID = uuid.New().String()
	book.AvailableCopies = book.Quantity

	err := dbs.pool.QueryRow(ctx,
		`INSERT INTO books (bid, title, author, isbn, quantity, available_copies, shelf_location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		book.BID, book.Title, book.Author, book.ISBN, book.Quantity, book.AvailableCopies, book.ShelfLocation).
		Scan(&book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn().Str("isbn", book.ISBN).Msg("duplicate isbn")
			return models.Book{}, storerrors.ErrDuplicateISBN
		}
		log.Error().Err(err).Msg("save book failed")
		return models.Book{}, err
	}
	return book, nil
}

func (dbs *DBStorage) GetBooks() ([]models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	rows, err := dbs.pool.Query(ctx,
		`SELECT bid, title, author, isbn, quantity, available_copies, shelf_location, created_at, updated_at
		FROM books ORDER BY created_at, bid`)
	if err != nil {
		log.Error().Err(err).Msg("failed get all books from db")
		return nil, err
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.BID, &book.Title, &book.Author, &book.ISBN,
			&book.Quantity, &book.AvailableCopies, &book.ShelfLocation,
			&book.CreatedAt, &book.UpdatedAt); err != nil {
			log.Error().Err(err).Msg("failed to scan data from db")
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

func (dbs *DBStorage) GetBook(bid string) (models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	row := dbs.pool.QueryRow(ctx,
		`SELECT bid, title, author, isbn, quantity, available_copies, shelf_location, created_at, updated_at
		FROM books WHERE bid = $1`, bid)

	var book models.Book
	if err := row.Scan(&book.BID, &book.Title, &book.Author, &book.ISBN,
		&book.Quantity, &book.AvailableCopies, &book.ShelfLocation,
		&book.CreatedAt, &book.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Book{}, storerrors.ErrBookNotFound
		}
		log.Error().Err(err).Msg("failed to scan data from db")
		return models.Book{}, err
	}
	return book, nil
}

// SearchBooks matches case-insensitive substrings on any supplied field.
// Empty arguments are skipped; no arguments at all matches everything.
func (dbs *DBStorage) SearchBooks(title, author, isbn string) ([]models.Book, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	baseQuery := `SELECT bid, title, author, isbn, quantity, available_copies, shelf_location, created_at, updated_at FROM books`
	var conditions []string
	var args []interface{}
	argPos := 1

	if title != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", argPos))
		args = append(args, "%"+title+"%")
		argPos++
	}
	if author != "" {
		conditions = append(conditions, fmt.Sprintf("author ILIKE $%d", argPos))
		args = append(args, "%"+author+"%")
		argPos++
	}
	if isbn != "" {
		conditions = append(conditions, fmt.Sprintf("isbn ILIKE $%d", argPos))
		args = append(args, "%"+isbn+"%")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := dbs.pool.Query(ctx, baseQuery+whereClause+" ORDER BY created_at, bid", args...)
	if err != nil {
		log.Error().Err(err).Msg("failed to search books in db")
		return nil, err
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.BID, &book.Title, &book.Author, &book.ISBN,
			&book.Quantity, &book.AvailableCopies, &book.ShelfLocation,
			&book.CreatedAt, &book.UpdatedAt); err != nil {
			log.Error().Err(err).Msg("failed to scan data from db")
			return nil, err
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, storerrors.ErrEmptyBooksList
	}
	return books, nil
}

// UpdateBook applies the non-nil fields. Zero matched rows is not an
// error. Shrinking quantity clamps available_copies so the counter
// never exceeds the total owned.
func (dbs *DBStorage) UpdateBook(bid string, upd models.BookUpdate) error {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	var sets []string
	var args []interface{}
	argPos := 1
	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argPos))
		args = append(args, val)
		argPos++
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Author != nil {
		add("author", *upd.Author)
	}
	if upd.ISBN != nil {
		add("isbn", *upd.ISBN)
	}
	if upd.ShelfLocation != nil {
		add("shelf_location", *upd.ShelfLocation)
	}
	if upd.Quantity != nil {
		add("quantity", *upd.Quantity)
		sets = append(sets, "available_copies = LEAST(available_copies, quantity)")
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = now()")

	query := fmt.Sprintf("UPDATE books SET %s WHERE bid = $%d", strings.Join(sets, ", "), argPos)
	args = append(args, bid)

	if _, err := dbs.pool.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return storerrors.ErrDuplicateISBN
		}
		log.Error().Err(err).Msg("failed to update book")
		return err
	}
	return nil
}

// DeleteBook succeeds whether or not the row existed.
func (dbs *DBStorage) DeleteBook(bid string) error {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	res, err := dbs.pool.Exec(ctx, `DELETE FROM books WHERE bid = $1`, bid)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete book")
		return err
	}
	if res.RowsAffected() == 0 {
		log.Warn().Str("bid", bid).Msg("book not found")
	}
	return nil
}

func (dbs *DBStorage) SaveBorrower(borrower models.Borrower) (models.Borrower, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	borrower.BID = uuid.New().String()
	err := dbs.pool.QueryRow(ctx,
		`INSERT INTO borrowers (bid, name, email) VALUES ($1, $2, $3)
		RETURNING registered_date`,
		borrower.BID, borrower.Name, borrower.Email).Scan(&borrower.RegisteredDate)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn().Str("email", borrower.Email).Msg("duplicate email")
			return models.Borrower{}, storerrors.ErrDuplicateEmail
		}
		log.Error().Err(err).Msg("save borrower failed")
		return models.Borrower{}, err
	}
	return borrower, nil
}

func (dbs *DBStorage) GetBorrowers() ([]models.Borrower, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	rows, err := dbs.pool.Query(ctx,
		`SELECT bid, name, email, registered_date FROM borrowers ORDER BY registered_date, bid`)
	if err != nil {
		log.Error().Err(err).Msg("failed get all borrowers from db")
		return nil, err
	}
	defer rows.Close()

	var borrowers []models.Borrower
	for rows.Next() {
		var b models.Borrower
		if err := rows.Scan(&b.BID, &b.Name, &b.Email, &b.RegisteredDate); err != nil {
			log.Error().Err(err).Msg("failed to scan data from db")
			return nil, err
		}
		borrowers = append(borrowers, b)
	}
	return borrowers, rows.Err()
}

func (dbs *DBStorage) DeleteBorrower(bid string) error {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	res, err := dbs.pool.Exec(ctx, `DELETE FROM borrowers WHERE bid = $1`, bid)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete borrower")
		return err
	}
	if res.RowsAffected() == 0 {
		log.Warn().Str("bid", bid).Msg("borrower not found")
	}
	return nil
}

// CreateBorrow checks availability and decrements the book's counter
// inside one transaction, holding a row lock on the book so two
// requests cannot both take the last copy.
func (dbs *DBStorage) CreateBorrow(req models.BorrowRequest) (models.Borrow, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	tx, err := dbs.pool.Begin(ctx)
	if err != nil {
		return models.Borrow{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var available int
	err = tx.QueryRow(ctx, `SELECT available_copies FROM books WHERE bid = $1 FOR UPDATE`, req.BookID).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = storerrors.ErrBookNotFound
			return models.Borrow{}, err
		}
		log.Error().Err(err).Msg("failed to lock book row")
		return models.Borrow{}, err
	}
	if available < 1 {
		err = storerrors.ErrNoAvailableCopies
		return models.Borrow{}, err
	}

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM borrowers WHERE bid = $1)`, req.BorrowerID).Scan(&exists)
	if err != nil {
		log.Error().Err(err).Msg("failed to check borrower")
		return models.Borrow{}, err
	}
	if !exists {
		err = storerrors.ErrBorrowerNotFound
		return models.Borrow{}, err
	}

	_, err = tx.Exec(ctx,
		`UPDATE books SET available_copies = available_copies - 1, updated_at = now() WHERE bid = $1`,
		req.BookID)
	if err != nil {
		log.Error().Err(err).Msg("failed to decrement available copies")
		return models.Borrow{}, err
	}

	borrow := models.Borrow{
		BID:        uuid.New().String(),
		BookID:     req.BookID,
		BorrowerID: req.BorrowerID,
		BorrowDate: req.BorrowDate,
		DueDate:    req.DueDate,
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO borrows (bid, book_id, borrower_id, borrow_date, due_date)
		VALUES ($1, $2, $3, $4, $5)`,
		borrow.BID, borrow.BookID, borrow.BorrowerID, borrow.BorrowDate, borrow.DueDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to create borrow")
		return models.Borrow{}, err
	}

	log.Debug().Str("bid", borrow.BID).Str("book", borrow.BookID).Msg("borrow created")
	return borrow, nil
}

// ReturnBorrow increments the book's counter (clamped to quantity) and
// deletes the borrow row in one transaction. A book deleted out of band
// is tolerated: the increment just matches zero rows.
func (dbs *DBStorage) ReturnBorrow(bid string) error {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	tx, err := dbs.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var bookID string
	err = tx.QueryRow(ctx, `SELECT book_id FROM borrows WHERE bid = $1 FOR UPDATE`, bid).Scan(&bookID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = storerrors.ErrBorrowNotFound
			return err
		}
		log.Error().Err(err).Msg("failed to lock borrow row")
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE books SET available_copies = LEAST(quantity, available_copies + 1), updated_at = now() WHERE bid = $1`,
		bookID)
	if err != nil {
		log.Error().Err(err).Msg("failed to increment available copies")
		return err
	}

	_, err = tx.Exec(ctx, `DELETE FROM borrows WHERE bid = $1`, bid)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete borrow")
		return err
	}

	log.Debug().Str("bid", bid).Msg("borrow returned")
	return nil
}

const borrowDetailsQuery = `
	SELECT br.bid, br.book_id, br.borrower_id, br.borrow_date, br.due_date, br.return_date,
		COALESCE(b.title, ''), COALESCE(b.author, ''), COALESCE(b.isbn, ''),
		COALESCE(b.quantity, 0), COALESCE(b.available_copies, 0), COALESCE(b.shelf_location, ''),
		COALESCE(w.name, ''), COALESCE(w.email, ''), COALESCE(w.registered_date, to_timestamp(0))
	FROM borrows br
	LEFT JOIN books b ON b.bid = br.book_id
	LEFT JOIN borrowers w ON w.bid = br.borrower_id`

func (dbs *DBStorage) queryBorrowDetails(where string, order string, args ...interface{}) ([]models.BorrowDetails, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(context.Background(), consts.DBCtxTimeout)
	defer cancel()

	query := borrowDetailsQuery
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY " + order

	rows, err := dbs.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Msg("failed to query borrows")
		return nil, err
	}
	defer rows.Close()

	var details []models.BorrowDetails
	for rows.Next() {
		var d models.BorrowDetails
		if err := rows.Scan(&d.BID, &d.BookID, &d.BorrowerID, &d.BorrowDate, &d.DueDate, &d.ReturnDate,
			&d.Book.Title, &d.Book.Author, &d.Book.ISBN,
			&d.Book.Quantity, &d.Book.AvailableCopies, &d.Book.ShelfLocation,
			&d.Borrower.Name, &d.Borrower.Email, &d.Borrower.RegisteredDate); err != nil {
			log.Error().Err(err).Msg("failed to scan data from db")
			return nil, err
		}
		d.Book.BID = d.BookID
		d.Borrower.BID = d.BorrowerID
		details = append(details, d)
	}
	return details, rows.Err()
}

func (dbs *DBStorage) GetBorrows() ([]models.BorrowDetails, error) {
	return dbs.queryBorrowDetails("", "br.borrow_date, br.bid")
}

func (dbs *DBStorage) GetBorrowsByBorrower(borrowerID string) ([]models.BorrowDetails, error) {
	return dbs.queryBorrowDetails("br.borrower_id = $1", "br.borrow_date, br.bid", borrowerID)
}

func (dbs *DBStorage) GetDueBorrows(now time.Time) ([]models.BorrowDetails, error) {
	return dbs.queryBorrowDetails("br.due_date <= $1", "br.due_date, br.bid", now)
}

func (dbs *DBStorage) GetBorrowsInPeriod(start, end time.Time) ([]models.BorrowDetails, error) {
	return dbs.queryBorrowDetails("br.borrow_date BETWEEN $1 AND $2", "br.borrow_date, br.bid", start, end)
}

// GetOverdueInPeriod keeps the borrow-report window on borrow_date:
// a loan overdue now but borrowed before the window is excluded.
func (dbs *DBStorage) GetOverdueInPeriod(start, end time.Time) ([]models.BorrowDetails, error) {
	return dbs.queryBorrowDetails("br.due_date <= $2 AND br.borrow_date >= $1", "br.due_date, br.bid", start, end)
}

func Migrations(dbDsn string, migrationsPath string) error {
	log := logger.Get()
	migratePath := fmt.Sprintf("file://%s", migrationsPath)
	m, err := migrate.New(migratePath, dbDsn)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("no migrations apply")
			return nil
		}
		return err
	}
	log.Info().Msg("all migrations apply")
	return nil
}
