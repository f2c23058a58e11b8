package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Log     LogConfig
	Records RecordsConfig
	Blob    BlobConfig
}

type ServerConfig struct {
	Port string
}

type DBConfig struct {
	// DSN vacío => repos in-memory (modo dev).
	DSN string
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

type RecordsConfig struct {
	PageSize int

	// StrictAnimalReferences exige que el animal exista también al crear
	// registros de salud y crecimiento (vacunación siempre lo exige).
	StrictAnimalReferences bool

	MaxUploadSize int64
}

type BlobConfig struct {
	Driver   string // memory | local | s3
	LocalDir string
	S3       S3Config
}

type S3Config struct {
	Endpoint        string
	Region          string
	BucketName      string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	Timeout         time.Duration
}

const (
	BlobDriverMemory = "memory"
	BlobDriverLocal  = "local"
	BlobDriverS3     = "s3"
)

// Load lee la configuración desde variables de entorno con defaults para dev.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "pet-care-records")
	v.SetDefault("PAGE_SIZE", 5)
	v.SetDefault("STRICT_ANIMAL_REFERENCES", false)
	v.SetDefault("MAX_UPLOAD_SIZE", 10*1024*1024) // 10MB
	v.SetDefault("BLOB_DRIVER", BlobDriverLocal)
	v.SetDefault("BLOB_LOCAL_DIR", "./storage/public")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_BUCKET_NAME", "pet-care-records")
	v.SetDefault("S3_ACCESS_KEY_ID", "")
	v.SetDefault("S3_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_USE_PATH_STYLE", true)
	v.SetDefault("S3_TIMEOUT", "30s")

	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
		},
		DB: DBConfig{
			DSN: strings.TrimSpace(v.GetString("DB_DSN")),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			App:    v.GetString("APP_NAME"),
		},
		Records: RecordsConfig{
			PageSize:               v.GetInt("PAGE_SIZE"),
			StrictAnimalReferences: v.GetBool("STRICT_ANIMAL_REFERENCES"),
			MaxUploadSize:          v.GetInt64("MAX_UPLOAD_SIZE"),
		},
		Blob: BlobConfig{
			Driver:   strings.ToLower(strings.TrimSpace(v.GetString("BLOB_DRIVER"))),
			LocalDir: v.GetString("BLOB_LOCAL_DIR"),
			S3: S3Config{
				Endpoint:        v.GetString("S3_ENDPOINT"),
				Region:          v.GetString("S3_REGION"),
				BucketName:      v.GetString("S3_BUCKET_NAME"),
				AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
				SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
				UsePathStyle:    v.GetBool("S3_USE_PATH_STYLE"),
				Timeout:         v.GetDuration("S3_TIMEOUT"),
			},
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Records.PageSize <= 0 {
		return fmt.Errorf("config: PAGE_SIZE must be > 0, got %d", c.Records.PageSize)
	}
	if c.Records.MaxUploadSize <= 0 {
		return fmt.Errorf("config: MAX_UPLOAD_SIZE must be > 0, got %d", c.Records.MaxUploadSize)
	}
	switch c.Blob.Driver {
	case BlobDriverMemory:
	case BlobDriverLocal:
		if strings.TrimSpace(c.Blob.LocalDir) == "" {
			return fmt.Errorf("config: BLOB_LOCAL_DIR required for local driver")
		}
	case BlobDriverS3:
		if strings.TrimSpace(c.Blob.S3.BucketName) == "" {
			return fmt.Errorf("config: S3_BUCKET_NAME required for s3 driver")
		}
	default:
		return fmt.Errorf("config: unknown BLOB_DRIVER %q", c.Blob.Driver)
	}
	return nil
}

// Addr devuelve la dirección de escucha del servidor HTTP.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Server.Port, ":")
}
