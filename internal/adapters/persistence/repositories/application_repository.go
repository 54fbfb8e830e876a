package repositories

import (
	"context"

	"pawsitter/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// applicationRepository implements ApplicationRepository interface
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create creates a new application
func (r *applicationRepository) Create(ctx context.Context, application *models.AnnouncementApplication) error {
	return r.db.WithContext(ctx).Create(application).Error
}

// ListByOwnerID lists applications across all announcements owned by the given user
func (r *applicationRepository) ListByOwnerID(ctx context.Context, ownerID uint) ([]*models.AnnouncementApplication, error) {
	var applications []*models.AnnouncementApplication
	err := r.db.WithContext(ctx).
		Joins("JOIN announcements ON announcements.id = announcement_applications.announcement_id").
		Where("announcements.owner_id = ?", ownerID).
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}
