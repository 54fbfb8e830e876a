package domain

// AnnouncementStatus is the closed set of announcement states.
// OPEN is the initial state; CLOSED means the engagement window ended;
// DELETED is a soft delete, the row persists but the content is
// invisible to list, get and apply.
type AnnouncementStatus string

const (
	StatusOpen    AnnouncementStatus = "OPEN"
	StatusClosed  AnnouncementStatus = "CLOSED"
	StatusDeleted AnnouncementStatus = "DELETED"
)

// ParseAnnouncementStatus maps a raw string onto the closed status set
func ParseAnnouncementStatus(s string) (AnnouncementStatus, error) {
	switch AnnouncementStatus(s) {
	case StatusOpen:
		return StatusOpen, nil
	case StatusClosed:
		return StatusClosed, nil
	case StatusDeleted:
		return StatusDeleted, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Roles gate lifecycle transitions. A user may hold both.
const (
	RoleOwner = "OWNER"
	RoleAdmin = "ADMIN"
)
