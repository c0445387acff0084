package config

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/pem"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"

	"github.com/jeebendu/glassy-property-hunter-97/internal/utils"
)

// Config holds all application configuration, including secrets and flags.
type Config struct {
	OrganizationName string
	AppName          string
	AppPort          string
	AppUrl           string
	DBUrl            string

	TokenExpiry        time.Duration
	RefreshTokenExpiry time.Duration

	MaxOtpAttempts         int
	VerificationCodeLength int
	VerificationCodeExpiry time.Duration

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromPhone  string
	SendGridAPIKey   string
	SendGridFrom     string

	RSAPrivateKey *rsa.PrivateKey
	RSAPublicKey  *rsa.PublicKey

	EmailLimitPerIPPerHour    int
	EmailLimitPerEmailPerHour int
	GlobalEmailLimitPerHour   int
	RateLimitWindow           time.Duration

	SendgridSandboxMode bool
	SMSCopyEnabled      bool
	AllowedOrigins      []string
}

// Defaults for time-based and limit configuration.
const (
	OrganizationName = "Glassy Property Hunter"

	DefaultTokenExpiry            = 10 * time.Minute
	DefaultRefreshTokenExpiry     = 7 * 24 * time.Hour
	VerificationCodeLength        = 6
	DefaultVerificationCodeExpiry = 5 * time.Minute
	DefaultMaxOtpAttempts         = 5

	DefaultEmailLimitPerIPPerHour    = 50
	DefaultEmailLimitPerEmailPerHour = 5
	DefaultGlobalEmailLimitPerHour   = 2000
	DefaultRateLimitWindow           = 1 * time.Hour
)

// LoadConfig reads the environment (plus an optional .env file) and returns a *Config.
func LoadConfig(appName string) *Config {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	utils.Logger.Info("Loading config for app: ", appName)

	appPort := mustEnv("APP_PORT")
	appUrl := mustEnv("APP_URL")
	dbUrl := mustEnv("DB_URL")

	utils.Logger.Debugf("App can be accessed at: %s", appUrl)

	sendGridAPIKey := mustEnv("SENDGRID_API_KEY")
	sendGridFrom := mustEnv("SENDGRID_FROM_EMAIL")

	cfg := &Config{
		OrganizationName: OrganizationName,
		AppName:          appName,
		AppPort:          appPort,
		AppUrl:           appUrl,
		DBUrl:            dbUrl,

		TokenExpiry:        envDuration("TOKEN_EXPIRY", DefaultTokenExpiry),
		RefreshTokenExpiry: envDuration("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiry),

		MaxOtpAttempts:         envInt("MAX_OTP_ATTEMPTS", DefaultMaxOtpAttempts),
		VerificationCodeLength: VerificationCodeLength,
		VerificationCodeExpiry: envDuration("VERIFICATION_CODE_EXPIRY", DefaultVerificationCodeExpiry),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:  os.Getenv("TWILIO_FROM_PHONE"),
		SendGridAPIKey:   sendGridAPIKey,
		SendGridFrom:     sendGridFrom,

		EmailLimitPerIPPerHour:    envInt("EMAIL_LIMIT_PER_IP_PER_HOUR", DefaultEmailLimitPerIPPerHour),
		EmailLimitPerEmailPerHour: envInt("EMAIL_LIMIT_PER_EMAIL_PER_HOUR", DefaultEmailLimitPerEmailPerHour),
		GlobalEmailLimitPerHour:   envInt("GLOBAL_EMAIL_LIMIT_PER_HOUR", DefaultGlobalEmailLimitPerHour),
		RateLimitWindow:           envDuration("RATE_LIMIT_WINDOW", DefaultRateLimitWindow),

		SendgridSandboxMode: envBool("SENDGRID_SANDBOX_MODE", false),
		SMSCopyEnabled:      envBool("SMS_COPY_ENABLED", false),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitAndTrim(origins)
	} else {
		cfg.AllowedOrigins = []string{"*"}
	}

	if cfg.SMSCopyEnabled && (cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioFromPhone == "") {
		utils.Logger.Fatal("SMS_COPY_ENABLED requires TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_FROM_PHONE")
	}

	cfg.RSAPrivateKey, cfg.RSAPublicKey = loadRSAKeys()

	return cfg
}

func loadRSAKeys() (*rsa.PrivateKey, *rsa.PublicKey) {
	privateKeyBase64 := mustEnv("RSA_PRIVATE_KEY_BASE64")
	privateKeyPEM, err := base64.StdEncoding.DecodeString(privateKeyBase64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to decode base64 private key")
	}
	if block, _ := pem.Decode(privateKeyPEM); block == nil {
		utils.Logger.Fatal("Failed to decode PEM block for private key")
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA private key")
	}

	publicKeyBase64 := mustEnv("RSA_PUBLIC_KEY_BASE64")
	publicKeyPEM, err := base64.StdEncoding.DecodeString(publicKeyBase64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to decode base64 public key")
	}
	if block, _ := pem.Decode(publicKeyPEM); block == nil {
		utils.Logger.Fatal("Failed to decode PEM block for public key")
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key")
	}

	return privateKey, publicKey
}

func mustEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		utils.Logger.Fatalf("%s env var is missing", key)
	}
	return val
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		utils.Logger.WithError(err).Fatalf("%s must be an integer", key)
	}
	return val
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		utils.Logger.WithError(err).Fatalf("%s must be a duration (e.g. 10m)", key)
	}
	return val
}

func envBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		utils.Logger.WithError(err).Fatalf("%s must be a boolean", key)
	}
	return val
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
