package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names so
// the prefix only matters for unannotated additions.
const EnvPrefix = "MODACART"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv        = "MODACART_APP_ENV"
	EnvPort          = "MODACART_APP_PORT"
	EnvMongoURI      = "MODACART_MONGO_URI"
	EnvMongoDatabase = "MODACART_MONGO_DATABASE"
	EnvJWTSecret     = "MODACART_JWT_SECRET"
	EnvJWTIssuer     = "MODACART_JWT_ISSUER"
	EnvJWTExpMins    = "MODACART_JWT_EXPIRATION_MINUTES"
	EnvMediaBaseURL  = "MODACART_MEDIA_PUBLIC_BASE_URL"
)
