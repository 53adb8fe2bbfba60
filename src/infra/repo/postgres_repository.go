package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"phonebook/src/core/domain"
	"phonebook/src/core/ports"
	"phonebook/src/infra/db"
)

// PostgresContactRepository implements ContactRepository using pgx.
type PostgresContactRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

var _ ports.ContactRepository = (*PostgresContactRepository)(nil)

// NewPostgresContactRepository constructs a repository backed by Postgres.
func NewPostgresContactRepository(pg *db.Postgres, log *slog.Logger) *PostgresContactRepository {
	return &PostgresContactRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresContactRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresContactRepository) GetAll(ctx context.Context) ([]domain.Contact, error) {
	const q = `
		SELECT id, name, phone_number
		FROM contacts
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.PhoneNumber); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (r *PostgresContactRepository) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	const q = `
		SELECT id, name, phone_number
		FROM contacts
		WHERE id = $1
	`
	var c domain.Contact
	if err := r.pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name, &c.PhoneNumber); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewContactNotFoundError(id)
		}
		return nil, fmt.Errorf("get contact %d: %w", id, err)
	}
	return &c, nil
}

func (r *PostgresContactRepository) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	const q = `
		INSERT INTO contacts (name, phone_number)
		VALUES ($1, $2)
		RETURNING id, name, phone_number
	`
	var created domain.Contact
	if err := r.pool.QueryRow(ctx, q, c.Name, c.PhoneNumber).Scan(&created.ID, &created.Name, &created.PhoneNumber); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	r.log.Debug("contact inserted", "contact_id", created.ID)
	return &created, nil
}

func (r *PostgresContactRepository) Update(ctx context.Context, id int64, c *domain.Contact) error {
	const q = `
		UPDATE contacts
		SET name = $2, phone_number = $3, updated_at = now()
		WHERE id = $1
	`
	res, err := r.pool.Exec(ctx, q, id, c.Name, c.PhoneNumber)
	if err != nil {
		return fmt.Errorf("update contact %d: %w", id, err)
	}
	if res.RowsAffected() == 0 {
		return domain.NewContactNotFoundError(id)
	}
	return nil
}

func (r *PostgresContactRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM contacts WHERE id = $1`
	res, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete contact %d: %w", id, err)
	}
	if res.RowsAffected() == 0 {
		return domain.NewContactNotFoundError(id)
	}
	return nil
}
