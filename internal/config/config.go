package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	ReferenceAPI ReferenceAPIConfig `mapstructure:"reference_api"`
	ExerciseAPI  ExerciseAPIConfig  `mapstructure:"exercise_api"`
	HTTP         HTTPConfig         `mapstructure:"http"`
	Secrets      SecretsConfig      `mapstructure:"secrets"`
	Media        MediaConfig        `mapstructure:"media"`
	Catalog      CatalogConfig      `mapstructure:"catalog"`
	Database     DatabaseConfig     `mapstructure:"database"`
	S3           S3Config           `mapstructure:"s3"`
	Assets       AssetsConfig       `mapstructure:"assets"`
	UI           UIConfig           `mapstructure:"ui"`
	CORS         CORSConfig         `mapstructure:"cors"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Mode    string `mapstructure:"mode"` // gin mode: debug, release, test
}

// ReferenceAPIConfig points at the muscle/equipment taxonomy API.
type ReferenceAPIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// ExerciseAPIConfig points at the exercise database.
// KeySecret names the secret holding the API key, never the key itself.
type ExerciseAPIConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	Host      string `mapstructure:"host"`
	KeySecret string `mapstructure:"key_secret"`
}

// HTTPConfig tunes the outbound client. A zero Timeout means none.
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type SecretsConfig struct {
	ProjectID string `mapstructure:"project_id"`
}

// MediaConfig holds the name -> locator tables. Keys are lower case and
// must include "default".
type MediaConfig struct {
	Animations map[string]string `mapstructure:"animations"`
	Images     map[string]string `mapstructure:"images"`
}

type CategoryConfig struct {
	ID   int    `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

// CatalogConfig selects where the browse categories come from.
// Source is "config" (the lists below) or "mongo".
type CatalogConfig struct {
	Source    string           `mapstructure:"source"`
	BodyParts []CategoryConfig `mapstructure:"body_parts"`
	Equipment []CategoryConfig `mapstructure:"equipment"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// Enabled reports whether enough is configured to talk to a bucket.
func (c S3Config) Enabled() bool {
	return c.BucketName != "" && c.Region != ""
}

// AssetsConfig locates the page background images. Object keys are
// presigned from S3 when storage is enabled, URLs are used otherwise.
type AssetsConfig struct {
	HomeBackgroundKey  string        `mapstructure:"home_background_key"`
	HomeBackgroundURL  string        `mapstructure:"home_background_url"`
	AboutBackgroundKey string        `mapstructure:"about_background_key"`
	AboutBackgroundURL string        `mapstructure:"about_background_url"`
	URLExpiry          time.Duration `mapstructure:"url_expiry"`
}

// UIConfig holds page behaviour switches.
// FilterableCategories lists the category slugs that get filter buttons;
// empty means every category.
type UIConfig struct {
	FilterableCategories []string `mapstructure:"filterable_categories"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No file: defaults and env vars only.
		err = nil
	} else if err != nil {
		return
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	applyTableDefaults(&config)
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("reference_api.base_url", "https://wger.de/api/v2")
	v.SetDefault("exercise_api.base_url", "https://exercisedb.p.rapidapi.com")
	v.SetDefault("exercise_api.host", "exercisedb.p.rapidapi.com")
	v.SetDefault("exercise_api.key_secret", "RAPIDAPI_KEY")
	v.SetDefault("http.timeout", "0s")
	v.SetDefault("catalog.source", "config")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitlife")
	// Empty defaults so the S3_* env vars are seen by Unmarshal.
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("secrets.project_id", "")
	v.SetDefault("assets.home_background_key", "backgrounds/home.jpg")
	v.SetDefault("assets.about_background_key", "backgrounds/about.jpg")
	v.SetDefault("assets.home_background_url", "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=1600")
	v.SetDefault("assets.about_background_url", "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=1600")
	v.SetDefault("assets.url_expiry", "15m")
	v.SetDefault("ui.filterable_categories", []string{"chest"})
	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// applyTableDefaults fills in the media tables and category lists.
// Viper cannot default map keys containing spaces reliably, so this is done
// after unmarshalling.
func applyTableDefaults(cfg *Config) {
	if len(cfg.Media.Animations) == 0 {
		cfg.Media.Animations = DefaultAnimations()
	}
	if len(cfg.Media.Images) == 0 {
		cfg.Media.Images = DefaultImages()
	}
	if len(cfg.Catalog.BodyParts) == 0 {
		cfg.Catalog.BodyParts = DefaultBodyParts()
	}
	if len(cfg.Catalog.Equipment) == 0 {
		cfg.Catalog.Equipment = DefaultEquipment()
	}
}
