package config

// EnvPrefix is the envconfig prefix for all application variables.
const EnvPrefix = "SHORTSHOP"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv = "SHORTSHOP_APP_ENV"
	EnvPort   = "SHORTSHOP_APP_PORT"

	EnvDBDSN  = "SHORTSHOP_DB_DSN"
	EnvDBHost = "SHORTSHOP_DB_HOST"
	EnvDBUser = "SHORTSHOP_DB_USER"
	EnvDBName = "SHORTSHOP_DB_NAME"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
