package repo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"phonebook/src/core/domain"
	"phonebook/src/core/ports"
)

// GormContactRepository implements ContactRepository with gorm.
// The schema is owned by the goose migrations; gorm never auto-migrates.
type GormContactRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ ports.ContactRepository = (*GormContactRepository)(nil)

func NewGormContactRepository(db *gorm.DB, logger *slog.Logger) *GormContactRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormContactRepository{db: db, logger: logger}
}

func (r *GormContactRepository) Health(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *GormContactRepository) GetAll(ctx context.Context) ([]domain.Contact, error) {
	var rows []contactModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("contact_repo_list_failed", err)
	}
	contacts := make([]domain.Contact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, row.toEntity())
	}
	return contacts, nil
}

func (r *GormContactRepository) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	var row contactModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewContactNotFoundError(id)
		}
		return nil, r.logError("contact_repo_get_failed", err, "contact_id", id)
	}
	c := row.toEntity()
	return &c, nil
}

func (r *GormContactRepository) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	now := time.Now().UTC()
	row := contactModel{
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, r.logError("contact_repo_create_failed", err)
	}
	created := row.toEntity()
	return &created, nil
}

func (r *GormContactRepository) Update(ctx context.Context, id int64, c *domain.Contact) error {
	res := r.db.WithContext(ctx).Model(&contactModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":         c.Name,
			"phone_number": c.PhoneNumber,
			"updated_at":   time.Now().UTC(),
		})
	if res.Error != nil {
		return r.logError("contact_repo_update_failed", res.Error, "contact_id", id)
	}
	if res.RowsAffected == 0 {
		return domain.NewContactNotFoundError(id)
	}
	return nil
}

func (r *GormContactRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&contactModel{})
	if res.Error != nil {
		return r.logError("contact_repo_delete_failed", res.Error, "contact_id", id)
	}
	if res.RowsAffected == 0 {
		return domain.NewContactNotFoundError(id)
	}
	return nil
}

func (r *GormContactRepository) logError(event string, err error, attrs ...any) error {
	fields := []any{
		"event", event,
		"layer", "adapter",
		"error", err.Error(),
	}
	fields = append(fields, attrs...)
	r.logger.Error("contact repository operation failed", fields...)
	return err
}

type contactModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	PhoneNumber string    `gorm:"column:phone_number"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (contactModel) TableName() string {
	return "contacts"
}

func (m contactModel) toEntity() domain.Contact {
	return domain.Contact{
		ID:          m.ID,
		Name:        m.Name,
		PhoneNumber: m.PhoneNumber,
	}
}
