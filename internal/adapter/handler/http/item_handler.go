package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/item-service/internal/domain/entity"
	"github.com/wekeepgrowing/item-service/internal/usecase"
	"github.com/wekeepgrowing/item-service/pkg/errors"
)

// ItemHandler serves the item CRUD endpoints.
type ItemHandler struct {
	items  *usecase.ItemUsecase
	logger *zap.Logger
}

// NewItemHandler creates a new ItemHandler instance.
func NewItemHandler(items *usecase.ItemUsecase, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{
		items:  items,
		logger: logger,
	}
}

// RegisterRoutes mounts the handler's routes on the Echo instance.
func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.POST("/items", h.CreateItem)
	e.GET("/items", h.ListItems)
	e.GET("/items/:id", h.GetItem)
	e.PUT("/items/:id", h.UpdateItem)
	e.DELETE("/items/:id", h.DeleteItem)
	e.DELETE("/items", h.DeleteAllItems)
}

// Root handles GET / with a short description of the service.
func (h *ItemHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"service": "item-service",
		"message": "Welcome to the Item Service API",
		"items":   "/items",
		"health":  "/health",
	})
}

// CreateItem handles POST /items
func (h *ItemHandler) CreateItem(c echo.Context) error {
	var in entity.NewItemInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if err := c.Validate(&in); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":   "validation failed",
			"details": err.Error(),
		})
	}

	item, err := h.items.Create(c.Request().Context(), in)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, item)
}

// ListItems handles GET /items
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.items.List(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

// GetItem handles GET /items/:id
func (h *ItemHandler) GetItem(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return h.respondInvalidID(c)
	}

	item, err := h.items.Get(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

// UpdateItem handles PUT /items/:id
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return h.respondInvalidID(c)
	}

	var in entity.UpdateItemInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	item, err := h.items.Update(c.Request().Context(), id, in)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /items/:id
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return h.respondInvalidID(c)
	}

	if err := h.items.Delete(c.Request().Context(), id); err != nil {
		return h.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteAllItems handles DELETE /items
func (h *ItemHandler) DeleteAllItems(c echo.Context) error {
	if err := h.items.DeleteAll(c.Request().Context()); err != nil {
		return h.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func itemID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// respondInvalidID rejects a non-integer path ID. The route expects an
// integer, so this is a validation failure rather than a missed lookup.
func (h *ItemHandler) respondInvalidID(c echo.Context) error {
	return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "item ID must be an integer"})
}

// respondError maps usecase failures onto HTTP responses. Server-side
// failures are logged here; client failures only show up in the request log.
func (h *ItemHandler) respondError(c echo.Context, err error) error {
	var appErr *errors.AppError
	if errors.As(err, &appErr) {
		status := errors.ToHTTPStatus(appErr.Code())
		if status >= http.StatusInternalServerError {
			errors.LogError(h.logger, err, "request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path))
		}
		return c.JSON(status, echo.Map{"error": appErr.Error()})
	}

	errors.LogError(h.logger, err, "request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Request().URL.Path))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}
