package config

const (
	// EnvPrefix scopes every environment variable read by envconfig.
	EnvPrefix = "ESONGE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	// Environment variable names, exported so tests can seed them.
	EnvAppEnv        = "ESONGE_APP_ENV"
	EnvPort          = "ESONGE_APP_PORT"
	EnvStorageDriver = "ESONGE_STORAGE_DRIVER"
	EnvDBDSN         = "ESONGE_DB_DSN"
	EnvRedisURL      = "ESONGE_REDIS_URL"
	EnvJWTSecret     = "ESONGE_JWT_SECRET"
	EnvJWTIssuer     = "ESONGE_JWT_ISSUER"
	EnvJWTExpMins    = "ESONGE_JWT_EXPIRATION_MINUTES"
	EnvLoginDelay    = "ESONGE_AUTH_LOGIN_DELAY"
)
