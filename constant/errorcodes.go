package constant

// Domain service error codes
const (
	// Request service - Configuration errors (1xx)
	ErrCodeInvalidConfiguration = "SVC101"

	// Request service - Rendering errors (2xx)
	ErrCodeRenderFailure = "SVC201"
)

// Renderer error codes
const (
	// Option validation errors (0xx)
	ErrCodeRenderOptions = "QR001"

	// Encoding errors (1xx)
	ErrCodeQREncode = "QR101"

	// Output errors (2xx)
	ErrCodeFileCreate = "QR201"
	ErrCodeFileEncode = "QR202"
	ErrCodeFileClose  = "QR203"
)

// Asset and scanner error codes
const (
	ErrCodeLogoOpen   = "AST001"
	ErrCodeLogoDecode = "AST002"

	ErrCodeScanOpen   = "SCN001"
	ErrCodeScanDecode = "SCN002"
)

// Error types for categorization
const (
	// Domain error types
	ErrTypeValidation = "validation"
	ErrTypeRender     = "render"

	// Infrastructure error types
	ErrTypeIO    = "io"
	ErrTypeAsset = "asset"
	ErrTypeScan  = "scan"
)
