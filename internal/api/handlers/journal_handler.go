package handlers

import (
	"errors"
	"strconv"

	"nutriscan-api/domain"
	"nutriscan-api/internal/api/presenters"
	"nutriscan-api/pkg/journal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	JournalHandler interface {
		AddToJournal(c *fiber.Ctx) error
		GetJournalEntries(c *fiber.Ctx) error
		GetDailySummary(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
		UploadEntryPhoto(c *fiber.Ctx) error
	}

	journalHandler struct {
		journalService journal.JournalService
		validator      *validator.Validate
	}
)

func NewJournalHandler(journalService journal.JournalService, validator *validator.Validate) JournalHandler {
	return &journalHandler{
		journalService: journalService,
		validator:      validator,
	}
}

func (h *journalHandler) AddToJournal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddToJournalRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToJournal, err)
	}

	res, err := h.journalService.AddToJournal(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrJournalPersistence) {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddToJournal, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToJournal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddToJournal)
}

func (h *journalHandler) GetJournalEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	date := c.Query("date")
	mealType := c.Query("meal_type", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	entries, count, err := h.journalService.GetJournalEntries(c.Context(), userID, date, mealType, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetJournal, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"entries": entries,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetJournal)
}

func (h *journalHandler) GetDailySummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	date := c.Query("date")

	summary, err := h.journalService.GetDailySummary(c.Context(), userID, date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDailySummary, err)
	}

	return presenters.SuccessResponse(c, summary, fiber.StatusOK, domain.MessageSuccessGetDailySummary)
}

func (h *journalHandler) DeleteEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	if err := h.journalService.DeleteEntry(c.Context(), entryID, userID); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEntry)
}

func (h *journalHandler) UploadEntryPhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadEntryPhotoRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	photo, err := c.FormFile("photo")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Photo = photo

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadEntryPhoto, err)
	}

	photoURL, err := h.journalService.UploadEntryPhoto(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadEntryPhoto, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"photo_url": photoURL}, fiber.StatusOK, domain.MessageSuccessUploadEntryPhoto)
}
