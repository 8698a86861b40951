package service

import (
	"fmt"

	"ssat_prep/internal/model"
)

// internalError は原因を残したまま ErrInternalServer として扱えるエラーを作ります。
func internalError(message string, cause error) *model.AppError {
	return model.NewAppError("INTERNAL_SERVER_ERROR", message, "", fmt.Errorf("%w: %w", model.ErrInternalServer, cause))
}
