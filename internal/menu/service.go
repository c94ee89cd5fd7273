// Package menu implements the menu item operations: validation, identifier
// minting, one transactional write per request and shaping of the result.
package menu

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/MosaabBleik/menu-service/internal/models"
	"github.com/MosaabBleik/menu-service/internal/store"
)

const (
	selectColumns = `id, name, description, price, available, created_at`

	insertSQL = `INSERT INTO ` + models.MenuTable + ` (id, name, description, price, available)
VALUES (@id, @name, @description, @price, @available)`

	updateSQL = `UPDATE ` + models.MenuTable + `
SET name = @name, description = @description, price = @price, available = @available
WHERE id = @id`

	deleteSQL = `DELETE FROM ` + models.MenuTable + ` WHERE id = @id`

	selectByIDSQL = `SELECT ` + selectColumns + ` FROM ` + models.MenuTable + ` WHERE id = @id`

	selectAllSQL = `SELECT ` + selectColumns + ` FROM ` + models.MenuTable + ` ORDER BY created_at DESC`
)

type Service struct {
	store  store.Client
	newID  func() string
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Service)

func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// WithClock sets the clock used for the approximate creation time returned
// when a created item cannot be read back.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(client store.Client, opts ...Option) *Service {
	s := &Service{
		store:  client,
		newID:  NewID,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates in, inserts a new item and reads it back to return the
// created_at the database assigned when the insert committed.
func (s *Service) Create(ctx context.Context, in models.MenuInput) (models.MenuItem, error) {
	if err := Validate(in); err != nil {
		return models.MenuItem{}, err
	}

	id := s.newID()
	_, err := s.store.ExecTx(ctx, store.Statement{
		SQL: insertSQL,
		Params: map[string]any{
			"id":          id,
			"name":        *in.Name,
			"description": *in.Description,
			"price":       *in.Price,
			"available":   *in.Available,
		},
	})
	if err != nil {
		return models.MenuItem{}, &StorageError{Op: "create", Err: err}
	}

	item, err := s.Get(ctx, id)
	if err == nil {
		return item, nil
	}

	// The insert is committed, so a failed read-back must not be reported
	// as a failed create.
	s.logger.WarnContext(ctx, "read after create failed, returning approximate createdAt",
		"id", id, "error", err)
	return models.MenuItem{
		ID:          id,
		Name:        *in.Name,
		Description: *in.Description,
		Price:       *in.Price,
		Available:   *in.Available,
		CreatedAt:   s.now().UTC(),
	}, nil
}

// List returns every item, newest first.
func (s *Service) List(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.store.Query(ctx, store.Statement{SQL: selectAllSQL})
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}

	items := make([]models.MenuItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, itemFromRow(row))
	}
	return items, nil
}

// Get is a point read by id.
func (s *Service) Get(ctx context.Context, id string) (models.MenuItem, error) {
	rows, err := s.store.Query(ctx, store.Statement{
		SQL:    selectByIDSQL,
		Params: map[string]any{"id": id},
	})
	if err != nil {
		return models.MenuItem{}, &StorageError{Op: "get", Err: err}
	}
	if len(rows) == 0 {
		return models.MenuItem{}, &NotFoundError{ID: id}
	}

	return itemFromRow(rows[0]), nil
}

// Update replaces the four mutable fields of id. The write commits even
// when no row matches; the follow-up point read decides between the
// updated item and *NotFoundError.
func (s *Service) Update(ctx context.Context, id string, in models.MenuInput) (models.MenuItem, error) {
	if err := Validate(in); err != nil {
		return models.MenuItem{}, err
	}

	_, err := s.store.ExecTx(ctx, store.Statement{
		SQL: updateSQL,
		Params: map[string]any{
			"id":          id,
			"name":        *in.Name,
			"description": *in.Description,
			"price":       *in.Price,
			"available":   *in.Available,
		},
	})
	if err != nil {
		return models.MenuItem{}, &StorageError{Op: "update", Err: err}
	}

	item, err := s.Get(ctx, id)
	if err != nil {
		var storageErr *StorageError
		if errors.As(err, &storageErr) {
			storageErr.Op = "update"
		}
		return models.MenuItem{}, err
	}
	return item, nil
}

// Delete removes id. Deleting an unknown id succeeds.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.store.ExecTx(ctx, store.Statement{
		SQL:    deleteSQL,
		Params: map[string]any{"id": id},
	}); err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	return nil
}

// Ping reports whether the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
