package common

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	OCR      OCRConfig      `yaml:"ocr"`
	Grading  GradingConfig  `yaml:"grading"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Audit    AuditConfig    `yaml:"audit"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"`
	MaxConns         int32         `yaml:"max_conns"`
	MinConns         int32         `yaml:"min_conns"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time"`
	DialTimeout      time.Duration `yaml:"dial_timeout"`
	StatementTimeout time.Duration `yaml:"statement_timeout"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string `yaml:"grpc_addr"`
}

// StorageConfig holds blob-store configuration
type StorageConfig struct {
	RootDir string `yaml:"root_dir"`
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	TessdataDir string   `yaml:"tessdata_dir"`
	Languages   []string `yaml:"languages"`
}

// GradingConfig holds grading-collaborator configuration
type GradingConfig struct {
	Model             string `yaml:"model"`
	APIKey            string `yaml:"api_key"`
	MaxTokens         int64  `yaml:"max_tokens"`
	UseMLSegmentation bool   `yaml:"use_ml_segmentation"`
}

// PipelineConfig holds orchestrator and queue configuration
type PipelineConfig struct {
	Workers        int           `yaml:"workers"`
	QueueSize      int           `yaml:"queue_size"`
	ProcessTimeout time.Duration `yaml:"process_timeout"`
	MaxAttempts    int           `yaml:"max_attempts"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay"`
	ReaperSchedule string        `yaml:"reaper_schedule"`
	StuckAfter     time.Duration `yaml:"stuck_after"`
}

// AuditConfig holds the append-only audit log configuration
type AuditConfig struct {
	DBPath string `yaml:"db_path"`
}

// LoadConfig loads configuration from an optional YAML file (CONFIG_PATH,
// default config.yaml) with environment variables taking precedence.
func LoadConfig() *Config {
	cfg := &Config{}

	configPath := getEnv("CONFIG_PATH", "config.yaml")
	if data, err := os.ReadFile(configPath); err == nil {
		_ = yaml.Unmarshal(data, cfg)
	}

	cfg.Database = DatabaseConfig{
		DSN:              getEnv("DB_URL", cfg.Database.DSN),
		MaxConns:         getEnvAsInt32("DB_MAX_CONNS", defaultInt32(cfg.Database.MaxConns, 20)),
		MinConns:         getEnvAsInt32("DB_MIN_CONNS", defaultInt32(cfg.Database.MinConns, 5)),
		MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", defaultDur(cfg.Database.MaxConnLifetime, 30*time.Minute)),
		MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", defaultDur(cfg.Database.MaxConnIdleTime, 5*time.Minute)),
		DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", defaultDur(cfg.Database.DialTimeout, 3*time.Second)),
		StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", cfg.Database.StatementTimeout),
	}
	cfg.Server = ServerConfig{
		GRPCAddr: getEnv("GRPC_ADDR", defaultStr(cfg.Server.GRPCAddr, ":8080")),
	}
	cfg.Storage = StorageConfig{
		RootDir: getEnv("BLOB_ROOT_DIR", defaultStr(cfg.Storage.RootDir, "./data/scripts")),
	}
	cfg.OCR = OCRConfig{
		TessdataDir: getEnv("TESSDATA_PREFIX", cfg.OCR.TessdataDir),
		Languages:   cfg.OCR.Languages,
	}
	cfg.Grading = GradingConfig{
		Model:             getEnv("ANTHROPIC_MODEL", defaultStr(cfg.Grading.Model, "claude-sonnet-4-5-20250929")),
		APIKey:            getEnv("ANTHROPIC_API_KEY", cfg.Grading.APIKey),
		MaxTokens:         int64(getEnvAsInt("GRADING_MAX_TOKENS", defaultInt(int(cfg.Grading.MaxTokens), 2048))),
		UseMLSegmentation: getEnvAsBool("USE_ML_SEGMENTATION", cfg.Grading.UseMLSegmentation),
	}
	cfg.Pipeline = PipelineConfig{
		Workers:        getEnvAsInt("PIPELINE_WORKERS", defaultInt(cfg.Pipeline.Workers, 4)),
		QueueSize:      getEnvAsInt("PIPELINE_QUEUE_SIZE", defaultInt(cfg.Pipeline.QueueSize, 256)),
		ProcessTimeout: getEnvAsDuration("PIPELINE_PROCESS_TIMEOUT", defaultDur(cfg.Pipeline.ProcessTimeout, 3*time.Minute)),
		MaxAttempts:    getEnvAsInt("PIPELINE_MAX_ATTEMPTS", defaultInt(cfg.Pipeline.MaxAttempts, 3)),
		RetryBaseDelay: getEnvAsDuration("PIPELINE_RETRY_BASE_DELAY", defaultDur(cfg.Pipeline.RetryBaseDelay, 500*time.Millisecond)),
		ReaperSchedule: getEnv("REAPER_SCHEDULE", defaultStr(cfg.Pipeline.ReaperSchedule, "@every 5m")),
		StuckAfter:     getEnvAsDuration("REAPER_STUCK_AFTER", defaultDur(cfg.Pipeline.StuckAfter, 15*time.Minute)),
	}
	cfg.Audit = AuditConfig{
		DBPath: getEnv("AUDIT_DB_PATH", defaultStr(cfg.Audit.DBPath, "./data/audit.db")),
	}
	return cfg
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Grading.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "ANTHROPIC_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func defaultStr(v, d string) string {
	if v == "" {
		return d
	}
	return v
}

func defaultInt(v, d int) int {
	if v == 0 {
		return d
	}
	return v
}

func defaultInt32(v, d int32) int32 {
	if v == 0 {
		return d
	}
	return v
}

func defaultDur(v, d time.Duration) time.Duration {
	if v == 0 {
		return d
	}
	return v
}
