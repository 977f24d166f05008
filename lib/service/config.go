package service

type Config struct {
	DatabaseUri string `envconfig:"DATABASE_URI" required:"true"`
	JWTSecret   []byte `envconfig:"JWT_SECRET" required:"true"`
	// token expiries in seconds
	JWTAccessTokenExpiry  int `envconfig:"JWT_ACCESS_EXPIRY" default:"172800"`
	JWTRefreshTokenExpiry int `envconfig:"JWT_REFRESH_EXPIRY" default:"604800"`

	DefaultAccountType   string `envconfig:"DEFAULT_ACCOUNT_TYPE" default:"checking"`
	AllowAccountCreation bool   `envconfig:"ALLOW_ACCOUNT_CREATION" default:"true"`
	Port                 int    `envconfig:"PORT" default:"3000"`
	LogFilePath          string `envconfig:"LOG_FILE_PATH"`
	SentryDSN            string `envconfig:"SENTRY_DSN"`
	StrictRateLimit      int    `envconfig:"STRICT_RATE_LIMIT" default:"10"`
	BurstRateLimit       int    `envconfig:"BURST_RATE_LIMIT" default:"1"`
}
