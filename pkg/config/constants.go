package config

// EnvPrefix is passed to envconfig; individual fields carry fully qualified names.
const EnvPrefix = "buildsetu"

const (
	AppEnvDev     = "development"
	AppEnvStaging = "staging"
	AppEnvProd    = "production"
)

const (
	EnvAppEnv  = "BUILDSETU_APP_ENV"
	EnvAppPort = "BUILDSETU_APP_PORT"

	EnvDBDSN  = "BUILDSETU_DB_DSN"
	EnvDBHost = "BUILDSETU_DB_HOST"
	EnvDBUser = "BUILDSETU_DB_USER"
	EnvDBName = "BUILDSETU_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
