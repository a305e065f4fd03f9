package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the server and the terminal client.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	GenAI  GenAIConfig  `mapstructure:"genai"`
	Client ClientConfig `mapstructure:"client"`
	Store  StoreConfig  `mapstructure:"store"`
	S3     S3Config     `mapstructure:"s3"`
	Export ExportConfig `mapstructure:"export"`
}

type ServerConfig struct {
	Address       string `mapstructure:"address"`
	AllowedOrigin string `mapstructure:"allowed_origin"` // CORS origin of the browser client, empty disables CORS
}

// GenAIConfig configures the text-generation model behind /api/generate.
// An empty APIKey is not a startup error: every request then fails with a
// configuration error.
type GenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// ClientConfig points the terminal client at a generation endpoint.
type ClientConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// StoreConfig selects the key/value backend holding the profile and plan.
type StoreConfig struct {
	Driver   string `mapstructure:"driver"` // "sqlite" or "mongo"
	Path     string `mapstructure:"path"`   // sqlite database file
	Scope    string `mapstructure:"scope"`  // partitions one backend between installations
	MongoURI string `mapstructure:"mongo_uri"`
	MongoDB  string `mapstructure:"mongo_db"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// ExportConfig controls where exported documents are delivered.
type ExportConfig struct {
	Dir    string `mapstructure:"dir"`
	Upload bool   `mapstructure:"upload"` // deliver to the S3 bucket instead of Dir
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, genai.api_key -> GENAI_API_KEY
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	// The deployment convention for the model key is a bare API_KEY.
	if err = v.BindEnv("genai.api_key", "GENAI_API_KEY", "API_KEY"); err != nil {
		return
	}

	setDefaults(v)

	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowed_origin", "")
	v.SetDefault("genai.api_key", "")
	v.SetDefault("genai.model", "gemini-2.5-flash")
	v.SetDefault("client.endpoint", "http://localhost:8080/api/generate")
	v.SetDefault("client.timeout", "2m")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "workout-planner.db")
	v.SetDefault("store.scope", "default")
	v.SetDefault("store.mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("store.mongo_db", "workout_planner")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("export.dir", ".")
	v.SetDefault("export.upload", false)
}
