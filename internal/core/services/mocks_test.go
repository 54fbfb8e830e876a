package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"pawsitter/internal/adapters/persistence/models"
	"pawsitter/internal/core/domain"

	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the store contracts the real
// GORM repositories provide, including gorm.ErrRecordNotFound on miss.

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

type fakeAnnouncementRepo struct {
	mu            sync.Mutex
	announcements map[uint]*models.Announcement
	nextID        uint
	writes        int
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{announcements: make(map[uint]*models.Announcement), nextID: 1}
}

func (r *fakeAnnouncementRepo) Create(_ context.Context, announcement *models.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	announcement.ID = r.nextID
	announcement.CreatedAt = time.Now()
	r.nextID++
	r.announcements[announcement.ID] = announcement
	r.writes++
	return nil
}

func (r *fakeAnnouncementRepo) GetByID(_ context.Context, id uint) (*models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	announcement, ok := r.announcements[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return announcement, nil
}

func (r *fakeAnnouncementRepo) ListByStatus(_ context.Context, status domain.AnnouncementStatus) ([]*models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*models.Announcement
	for _, a := range r.announcements {
		if a.Status == status {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeAnnouncementRepo) UpdateStatus(_ context.Context, id uint, status domain.AnnouncementStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.announcements[id]; ok {
		a.Status = status
		r.writes++
	}
	return nil
}

func (r *fakeAnnouncementRepo) CloseExpiredBefore(_ context.Context, day time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var closed int64
	for _, a := range r.announcements {
		if a.Status == domain.StatusOpen && a.EndDate != nil && a.EndDate.Before(day) {
			a.Status = domain.StatusClosed
			closed++
			r.writes++
		}
	}
	return closed, nil
}

type fakeApplicationRepo struct {
	mu            sync.Mutex
	applications  []*models.AnnouncementApplication
	announcements *fakeAnnouncementRepo
	nextID        uint
}

func newFakeApplicationRepo(announcements *fakeAnnouncementRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{announcements: announcements, nextID: 1}
}

func (r *fakeApplicationRepo) Create(_ context.Context, application *models.AnnouncementApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	application.ID = r.nextID
	application.CreatedAt = time.Now()
	r.nextID++
	r.applications = append(r.applications, application)
	return nil
}

func (r *fakeApplicationRepo) ListByOwnerID(ctx context.Context, ownerID uint) ([]*models.AnnouncementApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*models.AnnouncementApplication
	for _, app := range r.applications {
		announcement, err := r.announcements.GetByID(ctx, app.AnnouncementID)
		if err != nil {
			continue
		}
		if announcement.OwnerID == ownerID {
			result = append(result, app)
		}
	}
	return result, nil
}
