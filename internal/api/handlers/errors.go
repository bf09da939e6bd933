package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"solar-optimizer/internal/api/models"
	"solar-optimizer/internal/data"
	"solar-optimizer/internal/model"
	"solar-optimizer/internal/store"
)

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: message},
	})
}

// writeError maps a domain error onto a status and the standard error body.
func writeError(c *gin.Context, err error) {
	var inErr *model.InputError
	var fetchErr *data.FetchError
	switch {
	case errors.As(err, &inErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUT",
				Message: inErr.Error(),
				Details: map[string]interface{}{"field": inErr.Field},
			},
		})
	case errors.As(err, &fetchErr):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATA_FETCH_ERROR",
				Message: fetchErr.Error(),
				Details: map[string]interface{}{
					"provider_status": fetchErr.StatusCode,
					"reason":          fetchErr.Code,
				},
			},
		})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "NOT_FOUND", Message: err.Error()},
		})
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		c.JSON(http.StatusGatewayTimeout, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "TIMEOUT", Message: err.Error()},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INTERNAL_ERROR", Message: err.Error()},
		})
	}
}
