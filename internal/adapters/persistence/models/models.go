package models

import (
	"time"

	"pawsitter/internal/core/domain"

	"gorm.io/gorm"
)

// User represents users table
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	DisplayName  string    `gorm:"size:100" json:"display_name"`
	City         string    `gorm:"size:100" json:"city"`
	Country      string    `gorm:"size:100" json:"country"`
	Roles        []string  `gorm:"serializer:json" json:"roles"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	Roles       []string  `json:"roles"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		City:        u.City,
		Country:     u.Country,
		Roles:       u.Roles,
		CreatedAt:   u.CreatedAt,
	}
}

// Announcement represents announcements table. OwnerID is immutable
// after creation. Rows are never hard-deleted within the API: deletion
// flips Status to DELETED and the row stays behind.
type Announcement struct {
	ID          uint                      `gorm:"primaryKey" json:"id"`
	OwnerID     uint                      `gorm:"index;not null" json:"owner_id"`
	Title       string                    `gorm:"size:200;not null" json:"title"`
	Description string                    `gorm:"type:text;not null" json:"description"`
	City        string                    `gorm:"size:100" json:"city"`
	Country     string                    `gorm:"size:100" json:"country"`
	StartDate   *time.Time                `gorm:"type:date" json:"start_date"`
	EndDate     *time.Time                `gorm:"type:date" json:"end_date"`
	Status      domain.AnnouncementStatus `gorm:"size:20;not null;index" json:"status"`
	CreatedAt   time.Time                 `gorm:"autoCreateTime" json:"created_at"`
	Owner       User                      `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Announcement) TableName() string {
	return "announcements"
}

// AnnouncementResponse DTO
type AnnouncementResponse struct {
	ID          uint                      `json:"id"`
	OwnerID     uint                      `json:"owner_id"`
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	City        string                    `json:"city,omitempty"`
	Country     string                    `json:"country,omitempty"`
	StartDate   *time.Time                `json:"start_date,omitempty"`
	EndDate     *time.Time                `json:"end_date,omitempty"`
	Status      domain.AnnouncementStatus `json:"status"`
	CreatedAt   time.Time                 `json:"created_at"`
}

func (a *Announcement) ToResponse() *AnnouncementResponse {
	return &AnnouncementResponse{
		ID:          a.ID,
		OwnerID:     a.OwnerID,
		Title:       a.Title,
		Description: a.Description,
		City:        a.City,
		Country:     a.Country,
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
}

// AnnouncementApplication represents announcement_applications table.
// Applications are immutable once created and never change state.
type AnnouncementApplication struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	AnnouncementID uint         `gorm:"index;not null" json:"announcement_id"`
	Message        string       `gorm:"type:text;not null" json:"message"`
	Contact        string       `gorm:"size:200;not null" json:"contact"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	Announcement   Announcement `gorm:"foreignKey:AnnouncementID" json:"-"`
}

func (AnnouncementApplication) TableName() string {
	return "announcement_applications"
}

// ApplicationResponse DTO
type ApplicationResponse struct {
	ID             uint      `json:"id"`
	AnnouncementID uint      `json:"announcement_id"`
	Message        string    `json:"message"`
	Contact        string    `json:"contact"`
	CreatedAt      time.Time `json:"created_at"`
}

func (a *AnnouncementApplication) ToResponse() *ApplicationResponse {
	return &ApplicationResponse{
		ID:             a.ID,
		AnnouncementID: a.AnnouncementID,
		Message:        a.Message,
		Contact:        a.Contact,
		CreatedAt:      a.CreatedAt,
	}
}

// AutoMigrate migrates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Announcement{},
		&AnnouncementApplication{},
	)
}
