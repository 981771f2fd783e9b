package adapters

import (
	"context"
	"errors"
	"github.com/AngeloGiacco/cid-moreira/application/ports/outbound"
	"github.com/AngeloGiacco/cid-moreira/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type postgresMessageRepository struct {
	db     *gorm.DB
	logger outbound.LoggerPort
}

func NewPostgresMessageRepository(db *gorm.DB, logger outbound.LoggerPort) outbound.MessageRepositoryPort {
	return &postgresMessageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *postgresMessageRepository) Insert(ctx context.Context, record domain.MessageRecord) (*domain.MessageRecord, error) {
	record.ShareID = uuid.NewString()

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		r.logger.Error(err, "Failed to insert message record")
		return nil, err
	}

	return &record, nil
}

func (r *postgresMessageRepository) FindByShareID(ctx context.Context, shareID string) (*domain.MessageRecord, error) {
	var record domain.MessageRecord
	err := r.db.WithContext(ctx).First(&record, "share_id = ?", shareID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		r.logger.ErrorWithFields(err, "Failed to query message record", map[string]interface{}{
			"share_id": shareID,
		})
		return nil, err
	}

	return &record, nil
}
