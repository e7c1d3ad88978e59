package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/princeadura/leegion-party/internal/models"
	"github.com/princeadura/leegion-party/internal/storage"
)

type Storage struct {
	DB *sqlx.DB
}

// New opens the single-file database and creates the reservations table if it
// does not exist yet. Safe to call on every start.
func New(path string) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS reservations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT,
			email TEXT,
			phone TEXT,
			guests INTEGER,
			message TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// SaveReservation inserts a new row and returns its assigned id. Fields are
// stored as given; no validation happens at this layer.
func (s *Storage) SaveReservation(name, email, phone string, guests int, message string) (int64, error) {
	const op = "storage.sqlite.SaveReservation"

	query := `
		INSERT INTO reservations (name, email, phone, guests, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	res, err := s.DB.Exec(query, name, email, phone, guests, message, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// Reservations returns every row, newest first. The id tiebreaker keeps the
// order strict when two rows share a timestamp.
func (s *Storage) Reservations() ([]models.Reservation, error) {
	const op = "storage.sqlite.Reservations"

	query := `
		SELECT id, name, email, phone, guests, message, created_at
		FROM reservations
		ORDER BY created_at DESC, id DESC`

	var reservations []models.Reservation
	if err := s.DB.Select(&reservations, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reservations, nil
}

// Reservation looks up a single row by id, returning
// storage.ErrReservationNotFound when no such row exists.
func (s *Storage) Reservation(id int64) (*models.Reservation, error) {
	const op = "storage.sqlite.Reservation"

	query := `
		SELECT id, name, email, phone, guests, message, created_at
		FROM reservations
		WHERE id = ?`

	var reservation models.Reservation
	if err := s.DB.Get(&reservation, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrReservationNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &reservation, nil
}
