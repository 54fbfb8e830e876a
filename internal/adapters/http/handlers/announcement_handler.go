package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pawsitter/internal/adapters/http/middleware"
	"pawsitter/internal/core/domain"
	"pawsitter/internal/core/services"
	"pawsitter/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// AnnouncementHandler handles announcement endpoints
type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
	}
}

// CreateAnnouncementRequest represents announcement creation request body
type CreateAnnouncementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	City        string `json:"city"`
	Country     string `json:"country"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// ApplyRequest represents application request body
type ApplyRequest struct {
	Message string `json:"message"`
	Contact string `json:"contact"`
}

// ModerateRequest represents moderation request body
type ModerateRequest struct {
	Status string `json:"status"`
}

// List handles listing open announcements
// @Summary List announcements
// @Description List all OPEN announcements
// @Tags Announcements
// @Produce json
// @Success 200 {object} response.Response
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	result, err := h.announcementService.ListAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list announcements")
	}
	return response.Success(c, "Announcements retrieved", result)
}

// Get handles fetching a single announcement
// @Summary Get announcement
// @Description Get one announcement by id (deleted ones are not found)
// @Tags Announcements
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /announcements/{id} [get]
func (h *AnnouncementHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, response.CodeInvalidInput, "Invalid announcement id")
	}

	result, err := h.announcementService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAnnouncementNotFound) {
			return response.NotFound(c, response.CodeAnnouncementNotFound, "Announcement not found")
		}
		return response.InternalServerError(c, "Failed to get announcement")
	}
	return response.Success(c, "Announcement retrieved", result)
}

// Create handles announcement creation
// @Summary Create announcement
// @Description Create a new OPEN announcement owned by the caller
// @Tags Announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateAnnouncementRequest true "Announcement data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return response.Unauthorized(c, response.CodeUnauthorized, "Unauthorized")
	}

	var req CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, response.CodeInvalidInput, "Invalid request body")
	}

	if strings.TrimSpace(req.Title) == "" {
		return response.BadRequest(c, response.CodeInvalidInput, "Title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return response.BadRequest(c, response.CodeInvalidInput, "Description is required")
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return response.BadRequest(c, response.CodeInvalidInput, "start_date must be YYYY-MM-DD")
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return response.BadRequest(c, response.CodeInvalidInput, "end_date must be YYYY-MM-DD")
	}

	input := &services.CreateInput{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		City:        strings.TrimSpace(req.City),
		Country:     strings.TrimSpace(req.Country),
		StartDate:   startDate,
		EndDate:     endDate,
	}

	result, err := h.announcementService.Create(c.Context(), principal, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.Unauthorized(c, response.CodeUserNotFound, "User not found")
		case errors.Is(err, domain.ErrInvalidDateRange):
			return response.BadRequest(c, response.CodeInvalidDates, "endDate cannot be before startDate")
		default:
			return response.InternalServerError(c, "Failed to create announcement")
		}
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/v1/announcements/%d", result.ID))
	return response.Created(c, "Announcement created", result)
}

// Apply handles applying to an announcement
// @Summary Apply to announcement
// @Description Apply to an OPEN announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param id path int true "Announcement ID"
// @Param body body ApplyRequest true "Application data"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /announcements/{id}/apply [post]
func (h *AnnouncementHandler) Apply(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, response.CodeInvalidInput, "Invalid announcement id")
	}

	var req ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, response.CodeInvalidInput, "Invalid request body")
	}

	if strings.TrimSpace(req.Message) == "" {
		return response.BadRequest(c, response.CodeInvalidInput, "Message is required")
	}
	if strings.TrimSpace(req.Contact) == "" {
		return response.BadRequest(c, response.CodeInvalidInput, "Contact is required")
	}

	input := &services.ApplyInput{
		Message: req.Message,
		Contact: strings.TrimSpace(req.Contact),
	}

	result, err := h.announcementService.Apply(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrAnnouncementNotFound) {
			return response.NotFound(c, response.CodeAnnouncementNotFound, "Announcement not found")
		}
		return response.InternalServerError(c, "Failed to apply")
	}

	return response.Created(c, "Application submitted", result)
}

// Delete handles soft-deleting an announcement
// @Summary Delete announcement
// @Description Soft-delete an announcement (owner or admin)
// @Tags Announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return response.Unauthorized(c, response.CodeUnauthorized, "Unauthorized")
	}

	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, response.CodeInvalidInput, "Invalid announcement id")
	}

	result, err := h.announcementService.Delete(c.Context(), principal, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAnnouncementNotFound):
			return response.NotFound(c, response.CodeAnnouncementNotFound, "Announcement not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Only admin or owner can delete this announcement")
		default:
			return response.InternalServerError(c, "Failed to delete announcement")
		}
	}

	return response.Success(c, "Announcement deleted", result)
}

// Moderate handles admin moderation of an announcement
// @Summary Moderate announcement
// @Description Force an announcement into a given status (admin only)
// @Tags Announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Param body body ModerateRequest true "Target status"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /announcements/{id}/moderate [patch]
func (h *AnnouncementHandler) Moderate(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return response.Unauthorized(c, response.CodeUnauthorized, "Unauthorized")
	}

	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, response.CodeInvalidInput, "Invalid announcement id")
	}

	var req ModerateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, response.CodeInvalidInput, "Invalid request body")
	}

	result, err := h.announcementService.Moderate(c.Context(), principal, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Only admin can moderate announcements")
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, response.CodeInvalidInput, "Invalid announcement status")
		case errors.Is(err, domain.ErrAnnouncementNotFound):
			return response.NotFound(c, response.CodeAnnouncementNotFound, "Announcement not found")
		default:
			return response.InternalServerError(c, "Failed to moderate announcement")
		}
	}

	return response.Success(c, "Announcement moderated", result)
}

// CloseExpired handles the close-expired sweep
// @Summary Close expired announcements
// @Description Close all OPEN announcements whose end date has passed (admin only)
// @Tags Announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /announcements/close-expired [post]
func (h *AnnouncementHandler) CloseExpired(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return response.Unauthorized(c, response.CodeUnauthorized, "Unauthorized")
	}

	result, err := h.announcementService.CloseExpired(c.Context(), principal)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return response.Forbidden(c, "Only admin can close expired announcements")
		}
		return response.InternalServerError(c, "Failed to close expired announcements")
	}

	return response.Success(c, "Expired announcements closed", result)
}

// ListApplications handles listing the caller's incoming applications
// @Summary List applications
// @Description List applications across all announcements the caller owns
// @Tags Announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /announcements/applications [get]
func (h *AnnouncementHandler) ListApplications(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return response.Unauthorized(c, response.CodeUnauthorized, "Unauthorized")
	}

	result, err := h.announcementService.ListApplicationsForOwner(c.Context(), principal)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.Unauthorized(c, response.CodeUserNotFound, "User not found")
		}
		return response.InternalServerError(c, "Failed to list applications")
	}

	return response.Success(c, "Applications retrieved", result)
}

// parseID extracts the numeric id path parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseDate parses an optional YYYY-MM-DD value
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
