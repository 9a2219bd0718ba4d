package constants

const (
	APIBasePath = "/api/v1"

	ContentTypeHeaderName   = "Content-Type"
	CorrelationIDHeaderName = "X-Correlation-ID"
	ContentTypeJSON         = "application/json"
	ContentTypePDF          = "application/pdf"

	DefaultPageSize = 30
	MaxPageSize     = 100

	// Aliases for convenience
	HeaderContentType = ContentTypeHeaderName
)
