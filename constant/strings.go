package constant

// URI scheme and operations
const (
	URIScheme    = "web+stellar"
	OperationPay = "pay"
	OperationTx  = "tx"
)

// Payment operation parameter names
const (
	ParamDestination = "destination"
	ParamAmount      = "amount"
	ParamAssetCode   = "asset_code"
	ParamAssetIssuer = "asset_issuer"
	ParamMemo        = "memo"
	ParamMemoType    = "memo_type"
	ParamCallback    = "callback"
	ParamMsg         = "msg"
)

// Transaction operation parameter names
const (
	ParamXDR               = "xdr"
	ParamReplace           = "replace"
	ParamPubkey            = "pubkey"
	ParamChain             = "chain"
	ParamNetworkPassphrase = "network_passphrase"
	ParamOriginDomain      = "origin_domain"
	ParamSignature         = "signature"
)

// Render defaults
const (
	DefaultLogoSize       = 110
	DefaultModuleSize     = 10
	DefaultOutputBasename = "output"
)

// Function/Context names
const (
	// Domain context names
	CtxDomain             = "domain"
	CtxRequestPayment     = "RequestPayment"
	CtxRequestTransaction = "RequestTransaction"

	// Infrastructure context names
	CtxRender    = "Render"
	CtxMakeQR    = "MakeQR"
	CtxWriteFile = "WriteFile"
	CtxLogo      = "logo"
	CtxScan      = "scan"

	// General context names
	CtxMain = "Main"
)

// Data field keys
const (
	DataService     = "service"
	DataURI         = "uri"
	DataOperation   = "operation"
	DataFormat      = "format"
	DataKind        = "kind"
	DataLogo        = "logo"
	DataLogoSize    = "logo_size"
	DataModuleSize  = "module_size"
	DataWrite       = "write"
	DataFilename    = "filename"
	DataPath        = "path"
	DataVersion     = "version"
	DataWidth       = "width"
	DataHeight      = "height"
	DataElapsed     = "elapsed"
	DataConfig      = "config"
	DataEnvironment = "environment"
)

// Error message constants
const (
	ErrInvalidConfiguration = "invalid configuration"
	ErrUnknownFormat        = "invalid image type"
	ErrLogoUnsupported      = "logo insertion unavailable with type"
	ErrLogoMissing          = "logo requested but no logo asset configured"
	ErrNoQRCode             = "no QR code found in image"
)

// Error codes
const (
	ErrCodeAppLogo   = "APP001"
	ErrCodeAppRender = "APP002"
)

// Error types
const (
	ErrTypeApp = "application"
)

// Log keys
const (
	LogTimeKey         = "time"
	LogLevelKey        = "level"
	LogNameKey         = "logger"
	LogCallerKey       = "caller"
	LogMessageKey      = "msg"
	LogStacktraceKey   = "stacktrace"
	LogRequestIDKey    = "request_id"
	LogFunctionKey     = "function"
	LogErrorCodeKey    = "error_code"
	LogErrorTypeKey    = "error_type"
	LogErrorMessageKey = "error_message"
	LogEncodingJSON    = "json"
	LogEncodingConsole = "console"
	LogOutputStderr    = "stderr"
)

// Environment constants
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Message constants for application
const (
	MsgApplicationStarting = "Application starting"
	MsgFailedToLoadConfig  = "Failed to load configuration"
	MsgFailedToLoadLogo    = "Failed to load logo asset"
	MsgRequestFailed       = "Request failed"
	MsgImageWritten        = "Image written"
	MsgDemoFinished        = "Demo request rendered"
)
