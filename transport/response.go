package transport

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/muhammadheryan/variant-catalog/constant"
	"github.com/muhammadheryan/variant-catalog/utils/errors"
	"github.com/muhammadheryan/variant-catalog/utils/logger"
	validatorx "github.com/muhammadheryan/variant-catalog/utils/validator"
)

type response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

// writeError renders a CustomError with its own status. Anything else is
// reported as an internal error.
func writeError(w http.ResponseWriter, err error) {
	ce, ok := errors.AsCustomError(err)
	if !ok {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
	}
	writeJSON(w, ce.ErrorHTTPCode(), response{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}

func writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Warn("[validation] rejected request body",
		zap.String("path", r.URL.Path),
		zap.Strings("fields", validatorx.FieldErrors(err)),
	)
	writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
}
