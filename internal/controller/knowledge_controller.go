package controller

import (
	"ai-dialogue-be/internal/dto"
	"ai-dialogue-be/internal/pkg/serverutils"
	"ai-dialogue-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	LearnFact(ctx *fiber.Ctx) error
	QueryFacts(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	knowledgeService service.IKnowledgeService
}

func NewKnowledgeController(knowledgeService service.IKnowledgeService) IKnowledgeController {
	return &knowledgeController{
		knowledgeService: knowledgeService,
	}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge/v1")
	h.Post("facts", c.LearnFact)
	h.Get("facts", c.QueryFacts)
}

func (c *knowledgeController) LearnFact(ctx *fiber.Ctx) error {
	var req dto.LearnFactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.knowledgeService.LearnFact(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success learn fact", res))
}

func (c *knowledgeController) QueryFacts(ctx *fiber.Ctx) error {
	subject := ctx.Query("subject")
	relationship := ctx.Query("relationship")
	if subject == "" {
		return fiber.NewError(fiber.StatusBadRequest, "subject is required")
	}

	// Without a relationship this lists everything known about the subject.
	if relationship == "" {
		res, err := c.knowledgeService.ListSubjectFacts(ctx.Context(), subject, ctx.Query("source"))
		if err != nil {
			return err
		}
		return ctx.JSON(serverutils.SuccessResponse("Success query facts", res))
	}

	res, err := c.knowledgeService.QueryFacts(ctx.Context(), subject, relationship)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success query facts", res))
}
