package controller

import (
	"errors"

	"ai-dialogue-be/internal/dto"
	"ai-dialogue-be/internal/pkg/serverutils"
	"ai-dialogue-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDialogueController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	HandleTurn(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	CloseSession(ctx *fiber.Ctx) error
}

type dialogueController struct {
	dialogueService service.IDialogueService
}

func NewDialogueController(dialogueService service.IDialogueService) IDialogueController {
	return &dialogueController{
		dialogueService: dialogueService,
	}
}

func (c *dialogueController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dialogue/v1")
	h.Post("session", c.CreateSession)
	h.Get("session", c.ListSessions)
	h.Post("turn", c.HandleTurn)
	h.Get("session/:id/history", c.GetHistory)
	h.Delete("session/:id", c.CloseSession)
}

func (c *dialogueController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.dialogueService.CreateSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *dialogueController) ListSessions(ctx *fiber.Ctx) error {
	res, err := c.dialogueService.ListSessions(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}

func (c *dialogueController) HandleTurn(ctx *fiber.Ctx) error {
	var req dto.TurnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	sessionId, _ := uuid.Parse(req.SessionId)

	res, err := c.dialogueService.HandleTurn(ctx.Context(), sessionId, req.Text)
	if err != nil {
		return mapSessionError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process turn", res))
}

func (c *dialogueController) GetHistory(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	sessionId, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	limit := ctx.QueryInt("limit", 0)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.dialogueService.GetHistory(ctx.Context(), sessionId, limit, offset)
	if err != nil {
		return mapSessionError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get history", res))
}

func (c *dialogueController) CloseSession(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	sessionId, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	if err := c.dialogueService.CloseSession(ctx.Context(), sessionId); err != nil {
		return mapSessionError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success close session", struct{}{}))
}

func mapSessionError(err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSessionClosed):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrSessionBusy):
		return fiber.NewError(fiber.StatusTooManyRequests, err.Error())
	default:
		return err
	}
}
