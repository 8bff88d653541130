package handler

import (
	"net/http"

	"foodorder/internal/usecase"

	"github.com/labstack/echo/v4"
)

// POST /api/menu のbody。price/availabilityは省略を区別する。
type MenuItemCreateRequest struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Price        *float64 `json:"price"`
	Availability *bool    `json:"availability"`
}

// PUT /api/menu/:id のbody（部分更新）
type MenuItemUpdateRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Price        *float64 `json:"price"`
	Availability *bool    `json:"availability"`
}

// /api/menu
type MenuHandler struct {
	uc *usecase.MenuUsecase
}

// DI
func NewMenuHandler(uc *usecase.MenuUsecase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

func (h *MenuHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/menu", h.list)
	g.POST("/menu", h.create)
	g.PUT("/menu/:id", h.update)
	g.DELETE("/menu/:id", h.delete)
}

func (h *MenuHandler) list(c echo.Context) error {
	var page, limit int
	err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("limit", &limit).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid query"})
	}

	//0は「未指定」扱いなので明示の0は弾く
	if (c.QueryParam("page") != "" && page == 0) || (c.QueryParam("limit") != "" && limit == 0) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid query"})
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListMenuInput{Page: page, Limit: limit})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MenuHandler) create(c echo.Context) error {
	var req MenuItemCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: msgInvalidData})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreateMenuItemInput{
		Name:         req.Name,
		Category:     req.Category,
		Price:        req.Price,
		Availability: req.Availability,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *MenuHandler) update(c echo.Context) error {
	var req MenuItemUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: msgInvalidData})
	}

	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), usecase.UpdateMenuItemInput{
		Name:         req.Name,
		Category:     req.Category,
		Price:        req.Price,
		Availability: req.Availability,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MenuHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Menu item deleted successfully"})
}
