package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySession   contextKey = "session"
	ContextKeyWorkspace contextKey = "workspace"
)

const (
	RequestParamPage     = "page"
	RequestParamSortBy   = "sort_by"
	RequestParamSortDir  = "sort_dir"
	RequestParamSearch   = "search"
	RequestParamStatus   = "status"
	RequestParamCategory = "category"
	RequestParamViews    = "views"
	RequestParamToken    = "access_token"
)

const (
	RequestParamID     = "id"
	RequestParamItemID = "itemId"
	RequestParamField  = "field"
	RequestParamKind   = "kind"
)

const (
	DefaultValuePage = 1
	FilterAll        = "all"
)

// Actions carried by change events.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

const (
	SortDirAsc  = "asc"
	SortDirDesc = "desc"
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"
	OtelStoreScopeName      = "store"
	OtelWorkflowScopeName   = "workflow"

	OtelS3ScopeName = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAccept             = "Accept"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	// UpstreamAuthScheme is the scheme the restaurant backend expects in front of its token.
	UpstreamAuthScheme = "JWT"
	GatewayAuthScheme  = "Bearer"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	BoolStringTrue  = "true"
	BoolStringFalse = "false"
)

const (
	Asterix = "*"
	Empty   = ""
)
