package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ringbookhq/ringbook/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                          string
	ServiceName                     string
	ServiceVersion                  string
	HTTPAddr                        string
	DBURL                           string
	DBDisablePreparedBinary         bool
	CacheEnabled                    bool
	CacheTTL                        time.Duration
	CORSAllowedOrigins              []string
	ReadTimeout                     time.Duration
	WriteTimeout                    time.Duration
	PprofEnabled                    bool
	PprofAddr                       string
	UptraceEnabled                  bool
	UptraceDSN                      string
	UptraceLogsEnabled              bool
	UptraceCaptureRequestBody       bool
	UptraceRequestBodyMaxBytes      int
	PyroscopeEnabled                bool
	PyroscopeServerAddress          string
	PyroscopeAppName                string
	PyroscopeAuthToken              string
	PyroscopeBasicAuthUser          string
	PyroscopeBasicAuthPassword      string
	PyroscopeUploadRate             time.Duration
	WrestleDexEnabled               bool
	WrestleDexBaseURL               string
	WrestleDexToken                 string
	WrestleDexTimeout               time.Duration
	WrestleDexMaxRetries            int
	WrestleDexCircuitEnabled        bool
	WrestleDexCircuitFailureCount   int
	WrestleDexCircuitOpenTimeout    time.Duration
	WrestleDexCircuitHalfOpenMaxReq int
	ImportWorkerCount               int
	LogLevel                        logging.Level
}

// Load reads configuration from the environment. An empty DB_URL selects
// the in-memory repositories with the bundled seed data.
func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}
	uptraceCaptureRequestBody, err := strconv.ParseBool(getEnv("UPTRACE_CAPTURE_REQUEST_BODY", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_CAPTURE_REQUEST_BODY: %w", err)
	}
	uptraceRequestBodyMaxBytes, err := getEnvAsInt("UPTRACE_REQUEST_BODY_MAX_BYTES", 8192)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_REQUEST_BODY_MAX_BYTES: %w", err)
	}
	if uptraceRequestBodyMaxBytes <= 0 {
		return Config{}, fmt.Errorf("UPTRACE_REQUEST_BODY_MAX_BYTES must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	wrestleDexEnabled, err := strconv.ParseBool(getEnv("WRESTLEDEX_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WRESTLEDEX_ENABLED: %w", err)
	}
	wrestleDexTimeout, err := time.ParseDuration(getEnv("WRESTLEDEX_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WRESTLEDEX_TIMEOUT: %w", err)
	}
	if wrestleDexTimeout <= 0 {
		return Config{}, fmt.Errorf("WRESTLEDEX_TIMEOUT must be > 0")
	}
	wrestleDexMaxRetries, err := getEnvAsInt("WRESTLEDEX_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse WRESTLEDEX_MAX_RETRIES: %w", err)
	}
	if wrestleDexMaxRetries < 0 {
		return Config{}, fmt.Errorf("WRESTLEDEX_MAX_RETRIES must be >= 0")
	}
	wrestleDexCircuitEnabled, err := strconv.ParseBool(getEnv("WRESTLEDEX_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WRESTLEDEX_CIRCUIT_ENABLED: %w", err)
	}
	wrestleDexCircuitFailureCount, err := getEnvAsInt("WRESTLEDEX_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse WRESTLEDEX_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if wrestleDexCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("WRESTLEDEX_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	wrestleDexCircuitOpenTimeout, err := time.ParseDuration(getEnv("WRESTLEDEX_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WRESTLEDEX_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if wrestleDexCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("WRESTLEDEX_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	wrestleDexCircuitHalfOpenMaxReq, err := getEnvAsInt("WRESTLEDEX_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse WRESTLEDEX_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if wrestleDexCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("WRESTLEDEX_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	wrestleDexBaseURL := strings.TrimSpace(getEnv("WRESTLEDEX_BASE_URL", "https://api.wrestledex.io/v1"))
	wrestleDexToken := strings.TrimSpace(getEnv("WRESTLEDEX_TOKEN", ""))
	if wrestleDexEnabled && wrestleDexToken == "" {
		return Config{}, fmt.Errorf("WRESTLEDEX_TOKEN is required when WRESTLEDEX_ENABLED=true")
	}

	importWorkerCount, err := getEnvAsInt("IMPORT_WORKER_COUNT", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse IMPORT_WORKER_COUNT: %w", err)
	}
	if importWorkerCount < 1 {
		return Config{}, fmt.Errorf("IMPORT_WORKER_COUNT must be >= 1")
	}

	cfg := Config{
		AppEnv:                          appEnv,
		ServiceName:                     getEnv("APP_SERVICE_NAME", "ringbook-api"),
		ServiceVersion:                  getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                        getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                           strings.TrimSpace(os.Getenv("DB_URL")),
		DBDisablePreparedBinary:         true,
		CORSAllowedOrigins:              splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofEnabled:                    pprofEnabled,
		PprofAddr:                       pprofAddr,
		UptraceEnabled:                  uptraceEnabled,
		UptraceDSN:                      uptraceDSN,
		UptraceLogsEnabled:              uptraceLogsEnabled,
		UptraceCaptureRequestBody:       uptraceCaptureRequestBody,
		UptraceRequestBodyMaxBytes:      uptraceRequestBodyMaxBytes,
		PyroscopeEnabled:                pyroscopeEnabled,
		PyroscopeServerAddress:          pyroscopeServerAddress,
		PyroscopeAuthToken:              strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:          strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:             pyroscopeUploadRate,
		WrestleDexEnabled:               wrestleDexEnabled,
		WrestleDexBaseURL:               wrestleDexBaseURL,
		WrestleDexToken:                 wrestleDexToken,
		WrestleDexTimeout:               wrestleDexTimeout,
		WrestleDexMaxRetries:            wrestleDexMaxRetries,
		WrestleDexCircuitEnabled:        wrestleDexCircuitEnabled,
		WrestleDexCircuitFailureCount:   wrestleDexCircuitFailureCount,
		WrestleDexCircuitOpenTimeout:    wrestleDexCircuitOpenTimeout,
		WrestleDexCircuitHalfOpenMaxReq: wrestleDexCircuitHalfOpenMaxReq,
		ImportWorkerCount:               importWorkerCount,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	cfg.DBDisablePreparedBinary = dbDisablePreparedBinary

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}
	cfg.CacheEnabled = cacheEnabled
	cfg.CacheTTL = cacheTTL

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.LogLevel = parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
