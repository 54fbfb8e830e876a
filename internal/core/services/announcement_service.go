package services

import (
	"context"
	"errors"
	"log"
	"time"

	"pawsitter/internal/adapters/persistence/models"
	"pawsitter/internal/adapters/persistence/repositories"
	"pawsitter/internal/core/domain"

	"gorm.io/gorm"
)

// AnnouncementService enforces the announcement lifecycle: which status
// transitions exist and who may drive them
type AnnouncementService struct {
	announcementRepo repositories.AnnouncementRepository
	applicationRepo  repositories.ApplicationRepository
	userRepo         repositories.UserRepository
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(
	announcementRepo repositories.AnnouncementRepository,
	applicationRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		applicationRepo:  applicationRepo,
		userRepo:         userRepo,
	}
}

// CreateInput represents announcement creation input
type CreateInput struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"required"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// ApplyInput represents application input
type ApplyInput struct {
	Message string `json:"message" validate:"required"`
	Contact string `json:"contact" validate:"required"`
}

// StatusChangeResponse reports a completed transition
type StatusChangeResponse struct {
	ID     uint                      `json:"id"`
	Status domain.AnnouncementStatus `json:"status"`
}

// CloseExpiredResponse reports the result of a close-expired sweep
type CloseExpiredResponse struct {
	Closed int64 `json:"closed"`
}

// Create persists a new OPEN announcement owned by the principal
func (s *AnnouncementService) Create(ctx context.Context, principal *domain.Principal, input *CreateInput) (*models.AnnouncementResponse, error) {
	// 1. The token's user must still exist
	owner, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	// 2. Date sanity: endDate >= startDate when both present
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domain.ErrInvalidDateRange
	}

	announcement := &models.Announcement{
		OwnerID:     owner.ID,
		Title:       input.Title,
		Description: input.Description,
		City:        input.City,
		Country:     input.Country,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      domain.StatusOpen,
	}

	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	log.Printf("✅ Announcement created: #%d by user %d", announcement.ID, owner.ID)

	return announcement.ToResponse(), nil
}

// ListAll lists OPEN announcements only. CLOSED ones are excluded from
// the listing but remain individually retrievable through Get.
func (s *AnnouncementService) ListAll(ctx context.Context) ([]*models.AnnouncementResponse, error) {
	announcements, err := s.announcementRepo.ListByStatus(ctx, domain.StatusOpen)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		responses = append(responses, a.ToResponse())
	}
	return responses, nil
}

// Get returns any announcement except a DELETED one
func (s *AnnouncementService) Get(ctx context.Context, id uint) (*models.AnnouncementResponse, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, err
	}
	if announcement.Status == domain.StatusDeleted {
		return nil, domain.ErrAnnouncementNotFound
	}
	return announcement.ToResponse(), nil
}

// Apply records an application against an OPEN announcement. A CLOSED,
// DELETED or absent announcement is reported as not found, never as
// forbidden, so applicants cannot probe for withdrawn content.
func (s *AnnouncementService) Apply(ctx context.Context, id uint, input *ApplyInput) (*models.ApplicationResponse, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, err
	}
	if announcement.Status != domain.StatusOpen {
		return nil, domain.ErrAnnouncementNotFound
	}

	application := &models.AnnouncementApplication{
		AnnouncementID: announcement.ID,
		Message:        input.Message,
		Contact:        input.Contact,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	return application.ToResponse(), nil
}

// Delete soft-deletes an announcement. Allowed for the owner or an
// admin; the row is retained but disappears from list, get and apply.
// Deleting an already DELETED announcement is an idempotent success.
func (s *AnnouncementService) Delete(ctx context.Context, principal *domain.Principal, id uint) (*StatusChangeResponse, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, err
	}

	if !principal.IsAdmin() && announcement.OwnerID != principal.UserID {
		return nil, domain.ErrForbidden
	}

	if err := s.announcementRepo.UpdateStatus(ctx, announcement.ID, domain.StatusDeleted); err != nil {
		return nil, err
	}

	log.Printf("🗑️ Announcement deleted: #%d by user %d", announcement.ID, principal.UserID)

	return &StatusChangeResponse{ID: announcement.ID, Status: domain.StatusDeleted}, nil
}

// Moderate lets an admin force an announcement into a given status
func (s *AnnouncementService) Moderate(ctx context.Context, principal *domain.Principal, id uint, status string) (*StatusChangeResponse, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	target, err := domain.ParseAnnouncementStatus(status)
	if err != nil {
		return nil, err
	}

	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, err
	}

	if err := s.announcementRepo.UpdateStatus(ctx, announcement.ID, target); err != nil {
		return nil, err
	}

	log.Printf("✅ Announcement moderated: #%d -> %s", announcement.ID, target)

	return &StatusChangeResponse{ID: announcement.ID, Status: target}, nil
}

// CloseExpired closes all OPEN announcements whose end date has passed,
// as one batch. Running it again immediately closes nothing and
// returns zero.
func (s *AnnouncementService) CloseExpired(ctx context.Context, principal *domain.Principal) (*CloseExpiredResponse, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	closed, err := s.announcementRepo.CloseExpiredBefore(ctx, startOfToday())
	if err != nil {
		return nil, err
	}

	if closed > 0 {
		log.Printf("✅ Closed %d expired announcements", closed)
	}

	return &CloseExpiredResponse{Closed: closed}, nil
}

// ListApplicationsForOwner returns applications across every
// announcement the principal owns
func (s *AnnouncementService) ListApplicationsForOwner(ctx context.Context, principal *domain.Principal) ([]*models.ApplicationResponse, error) {
	// The token's user must still exist
	owner, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	applications, err := s.applicationRepo.ListByOwnerID(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		responses = append(responses, a.ToResponse())
	}
	return responses, nil
}

// startOfToday returns local midnight; an end date strictly before it
// means the engagement window ended yesterday or earlier
func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
