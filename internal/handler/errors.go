package handler

import (
	"net/http"

	"foodorder/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 全エラーは {"message": "..."}
type ErrorResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

const msgInvalidData = "Invalid data"

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Message: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
}
