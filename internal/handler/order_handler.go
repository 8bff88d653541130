package handler

import (
	"net/http"

	"foodorder/internal/middleware"
	"foodorder/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderItemRequest struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type OrderCreateRequest struct {
	Items       []OrderItemRequest `json:"items"`
	TotalAmount float64            `json:"totalAmount"`
}

// /api/order は全部 bearer 必須
func (h *OrderHandler) RegisterRoutes(g *echo.Group, verifier middleware.TokenVerifier) {
	o := g.Group("/order")
	o.Use(middleware.AuthJWT(verifier))

	o.POST("", h.create)
	o.GET("", h.list)
	o.PUT("/:id/complete", h.complete)
}

func (h *OrderHandler) create(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Access Denied"})
	}

	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: msgInvalidData})
	}

	items := make([]usecase.PlaceOrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.PlaceOrderItemInput{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		})
	}

	out, err := h.uc.Place(c.Request().Context(), userID, usecase.PlaceOrderInput{
		Items:       items,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Access Denied"})
	}

	out, err := h.uc.ListForOwner(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// body の {status} は読まない（完了にしかしない）
func (h *OrderHandler) complete(c echo.Context) error {
	out, err := h.uc.Complete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
