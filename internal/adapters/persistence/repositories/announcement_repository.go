package repositories

import (
	"context"
	"time"

	"pawsitter/internal/adapters/persistence/models"
	"pawsitter/internal/core/domain"

	"gorm.io/gorm"
)

// announcementRepository implements AnnouncementRepository interface
type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

// Create creates a new announcement
func (r *announcementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

// GetByID gets an announcement by ID regardless of status
func (r *announcementRepository) GetByID(ctx context.Context, id uint) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&announcement).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// ListByStatus lists announcements in the given status
func (r *announcementRepository) ListByStatus(ctx context.Context, status domain.AnnouncementStatus) ([]*models.Announcement, error) {
	var announcements []*models.Announcement
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

// UpdateStatus sets the status of a single announcement as one atomic update
func (r *announcementRepository) UpdateStatus(ctx context.Context, id uint, status domain.AnnouncementStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Announcement{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CloseExpiredBefore closes all OPEN announcements whose end date falls
// strictly before the given day, as one atomic batch update. Returns
// the number of rows closed; re-running with nothing expired writes
// nothing and returns zero.
func (r *announcementRepository) CloseExpiredBefore(ctx context.Context, day time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Announcement{}).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", domain.StatusOpen, day).
		Update("status", domain.StatusClosed)
	return result.RowsAffected, result.Error
}
