package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/focusguard/focusguard/internal/domain"
)

type TagRepository interface {
	Create(ctx context.Context, tag *domain.ScanTag) error
	// GetByUID resolves a scanned identifier to a registered tag.
	// Returns nil without error when the UID is unknown.
	GetByUID(ctx context.Context, userID uuid.UUID, tagUID string) (*domain.ScanTag, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ScanTag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *domain.ScanTag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) GetByUID(ctx context.Context, userID uuid.UUID, tagUID string) (*domain.ScanTag, error) {
	var tag domain.ScanTag
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tag_uid = ?", userID, tagUID).
		First(&tag).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ScanTag, error) {
	var tags []domain.ScanTag
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&tags).Error
	return tags, err
}
