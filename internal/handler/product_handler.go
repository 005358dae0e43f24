package handler

import (
	"go-catalog-api/internal/apperror"
	"go-catalog-api/internal/codec"
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// respond writes an already-encoded body with the format's content type.
func respond(c *fiber.Ctx, status int, body []byte, f codec.Format) error {
	c.Set(fiber.HeaderContentType, codec.ContentType(f))
	return c.Status(status).Send(body)
}

func responseFormat(c *fiber.Ctx) codec.Format {
	return codec.FromAccept(c.Get(fiber.HeaderAccept))
}

func requestFormat(c *fiber.Ctx) codec.Format {
	return codec.FromContentType(c.Get(fiber.HeaderContentType))
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	limit := c.QueryInt("limit", 0)

	result, err := h.service.List(page, limit)
	if err != nil {
		return err
	}

	format := responseFormat(c)
	body, err := codec.EncodeList(result.Page, result.Limit, result.Total, result.Items, format)
	if err != nil {
		return apperror.Internal("failed to encode response")
	}
	return respond(c, fiber.StatusOK, body, format)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	product, err := h.service.Get(c.Params("id"))
	if err != nil {
		return err
	}

	format := responseFormat(c)
	body, err := codec.EncodeDetail(product, format)
	if err != nil {
		return apperror.Internal("failed to encode response")
	}
	return respond(c, fiber.StatusOK, body, format)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	req, err := codec.DecodeCreate(c.Body(), requestFormat(c))
	if err != nil {
		return apperror.BadRequest("malformed request body")
	}

	product, err := h.service.Create(req)
	if err != nil {
		return err
	}

	format := responseFormat(c)
	body, err := codec.EncodeDetail(product, format)
	if err != nil {
		return apperror.Internal("failed to encode response")
	}
	return respond(c, fiber.StatusCreated, body, format)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	req, err := codec.DecodeUpdate(c.Body(), requestFormat(c))
	if err != nil {
		return apperror.BadRequest("malformed request body")
	}

	product, err := h.service.Update(c.Params("id"), req)
	if err != nil {
		return err
	}

	format := responseFormat(c)
	body, err := codec.EncodeDetail(product, format)
	if err != nil {
		return apperror.Internal("failed to encode response")
	}
	return respond(c, fiber.StatusOK, body, format)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
