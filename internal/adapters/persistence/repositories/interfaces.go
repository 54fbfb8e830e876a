package repositories

import (
	"context"
	"time"

	"pawsitter/internal/adapters/persistence/models"
	"pawsitter/internal/core/domain"
)

// UserRepository defines user data access methods
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
}

// AnnouncementRepository defines announcement data access methods
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	GetByID(ctx context.Context, id uint) (*models.Announcement, error)
	ListByStatus(ctx context.Context, status domain.AnnouncementStatus) ([]*models.Announcement, error)
	UpdateStatus(ctx context.Context, id uint, status domain.AnnouncementStatus) error
	CloseExpiredBefore(ctx context.Context, day time.Time) (int64, error)
}

// ApplicationRepository defines announcement application data access methods
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.AnnouncementApplication) error
	ListByOwnerID(ctx context.Context, ownerID uint) ([]*models.AnnouncementApplication, error)
}
