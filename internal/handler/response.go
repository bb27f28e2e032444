package handler

import (
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// APIの共通レスポンス（success / data / message / errors）
type APIResponse struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func successResponse(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

func errorResponse(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}

// エラーをHTTPステータスへ変換する
// ドメインエラー=400 / 未存在=404 / それ以外=500
func statusOf(err error) int {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		return http.StatusNotFound
	case model.IsDomainError(err), errors.Is(err, usecase.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrAuthorization):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func writeAPIError(c echo.Context, err error) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		// 内部の詳細は外へ出さない
		return c.JSON(status, errorResponse("internal error"))
	}
	return c.JSON(status, errorResponse(err.Error()))
}

// HTML/HTMX用。本文なしでステータスだけ返す
func writePageError(c echo.Context, err error) error {
	return c.NoContent(statusOf(err))
}
