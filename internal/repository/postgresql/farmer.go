package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/auth"
	"github.com/agrilabs/wms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type farmerRepository struct {
	db *database.DB
}

// NewFarmerRepository creates a new farmer repository
func NewFarmerRepository(db *database.DB) auth.FarmerRepository {
	return &farmerRepository{db: db}
}

func (r *farmerRepository) Create(ctx context.Context, f auth.Farmer) (auth.Farmer, error) {
	q := GetQuerier(ctx, r.db)

	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now

	query := `
		INSERT INTO farmers (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query, f.ID, f.Name, f.Email, f.PasswordHash, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return auth.Farmer{}, fmt.Errorf("failed to create farmer: %w", err)
	}

	return f, nil
}

func (r *farmerRepository) GetByEmail(ctx context.Context, email string) (auth.Farmer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM farmers
		WHERE email = $1
	`

	var f auth.Farmer
	err := q.QueryRow(ctx, query, email).Scan(&f.ID, &f.Name, &f.Email, &f.PasswordHash, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Farmer{}, auth.ErrFarmerNotFound
		}
		return auth.Farmer{}, fmt.Errorf("failed to get farmer by email: %w", err)
	}

	return f, nil
}

func (r *farmerRepository) GetByID(ctx context.Context, id string) (auth.Farmer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM farmers
		WHERE id = $1
	`

	var f auth.Farmer
	err := q.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.Email, &f.PasswordHash, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Farmer{}, auth.ErrFarmerNotFound
		}
		return auth.Farmer{}, fmt.Errorf("failed to get farmer: %w", err)
	}

	return f, nil
}

func (r *farmerRepository) ListIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM farmers ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list farmer ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan farmer id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
