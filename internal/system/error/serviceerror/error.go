package serviceerror

type ServiceErrorType string

const (
	ClientErrorType ServiceErrorType = "client_error"
	ServerErrorType ServiceErrorType = "server_error"
)

type ServiceError struct {
	Code             string           `json:"code"`
	Type             ServiceErrorType `json:"type"`
	Error            string           `json:"error"`
	ErrorDescription string           `json:"error_description,omitempty"`
}

var (
	InternalServerError = ServiceError{
		Type:             ServerErrorType,
		Code:             "VSE-5000",
		Error:            "internal_server_error",
		ErrorDescription: "An unexpected error occurred",
	}

	DatabaseError = ServiceError{
		Type:             ServerErrorType,
		Code:             "VSE-5001",
		Error:            "database_error",
		ErrorDescription: "A database error occurred",
	}

	InvalidRequestError = ServiceError{
		Type:             ClientErrorType,
		Code:             "VCE-4000",
		Error:            "invalid_request",
		ErrorDescription: "The request is invalid",
	}

	ValidationError = ServiceError{
		Type:             ClientErrorType,
		Code:             "VCE-4001",
		Error:            "validation_error",
		ErrorDescription: "Validation failed",
	}

	ResourceNotFoundError = ServiceError{
		Type:             ClientErrorType,
		Code:             "VCE-4004",
		Error:            "resource_not_found",
		ErrorDescription: "Resource not found",
	}

	ConflictError = ServiceError{
		Type:             ClientErrorType,
		Code:             "VCE-4009",
		Error:            "conflict",
		ErrorDescription: "Request conflicts with current state",
	}

	// Issuance pipeline errors. All four are terminal for a single issuance
	// attempt; the caller decides whether to retry the whole pipeline.

	InvalidInputError = ServiceError{
		Type:             ClientErrorType,
		Code:             "VCE-4010",
		Error:            "invalid_input",
		ErrorDescription: "Card request is missing required fields",
	}

	QrEncodingError = ServiceError{
		Type:             ServerErrorType,
		Code:             "VSE-5101",
		Error:            "qr_encoding_failed",
		ErrorDescription: "Failed to encode verification QR code",
	}

	RenderingError = ServiceError{
		Type:             ServerErrorType,
		Code:             "VSE-5102",
		Error:            "rendering_failed",
		ErrorDescription: "Failed to render voter card document",
	}

	StorageUnavailableError = ServiceError{
		Type:             ServerErrorType,
		Code:             "VSE-5103",
		Error:            "storage_unavailable",
		ErrorDescription: "Failed to upload voter card to artifact storage",
	}
)

func CustomServiceError(baseError ServiceError, description string) *ServiceError {
	return &ServiceError{
		Type:             baseError.Type,
		Code:             baseError.Code,
		Error:            baseError.Error,
		ErrorDescription: description,
	}
}
