package utils

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evoteng/voter-card-api/internal/system/constants"
	"github.com/evoteng/voter-card-api/internal/system/error/apierror"
	"github.com/evoteng/voter-card-api/internal/system/error/serviceerror"
)

func DecodeJSONBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// SendError writes a ServiceError as an HTTP response with appropriate status code
func SendError(w http.ResponseWriter, err *serviceerror.ServiceError) {
	errorResponse := apierror.NewErrorResponse(err.Error, err.ErrorDescription)

	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCodeFor(err))
	json.NewEncoder(w).Encode(errorResponse)
}

// SendGinError writes a ServiceError through a gin context.
func SendGinError(c *gin.Context, err *serviceerror.ServiceError) {
	c.JSON(statusCodeFor(err), apierror.NewErrorResponse(err.Error, err.ErrorDescription))
}

func statusCodeFor(err *serviceerror.ServiceError) int {
	if err.Type == serviceerror.ClientErrorType {
		switch err.Code {
		case serviceerror.ResourceNotFoundError.Code:
			return http.StatusNotFound
		case serviceerror.ConflictError.Code:
			return http.StatusConflict
		default:
			return http.StatusBadRequest
		}
	}
	if err.Code == serviceerror.StorageUnavailableError.Code {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
