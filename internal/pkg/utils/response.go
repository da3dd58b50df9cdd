package utils

import (
	"diagnosis-service/internal/pkg/constvars"
	"diagnosis-service/internal/pkg/dto/responses"
	"diagnosis-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	BuildJSONResponse(w, code, response)
}

// BuildJSONResponse writes data as the whole body, without the success envelope.
func BuildJSONResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication
	clientDetail := constvars.ErrClientUnexpectedErrorDetail

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		clientDetail = customErr.ClientDetail
		for _, location := range customErr.Locations {
			location := map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}
			if code >= constvars.StatusInternalServerError {
				log.Error(customErr.DevMessage, zap.Int(constvars.LoggingStatusCodeKey, code), zap.Any("location", location))
			} else {
				log.Warn(customErr.DevMessage, zap.Int(constvars.LoggingStatusCodeKey, code), zap.Any("location", location))
			}
		}
	} else if err != nil {
		log.Error(err.Error(), zap.Int(constvars.LoggingStatusCodeKey, code))
	}

	if code == constvars.StatusTooManyRequests {
		w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(1))
	}

	response := exceptions.CustomError{
		StatusCode:    code,
		ClientMessage: clientMessage,
		ClientDetail:  clientDetail,
	}
	if customErr != nil && !IsProductionEnvironment() {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	BuildJSONResponse(w, code, response)
}

func IsProductionEnvironment() bool {
	return GetEnvString("APP_ENV", constvars.AppEnvDevelopment) == constvars.AppEnvProduction
}
