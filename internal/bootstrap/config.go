package bootstrap

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort      string        `mapstructure:"SERVER_PORT"`
	RedisUrl        string        `mapstructure:"REDIS_URL"`
	MongoUri        string        `mapstructure:"MONGO_URI"`
	MongoDatabase   string        `mapstructure:"MONGO_DATABASE"`
	OutputEncoding  string        `mapstructure:"OUTPUT_ENCODING"`
	PadHour         bool          `mapstructure:"PAD_HOUR"`
	ValidateRecords bool          `mapstructure:"VALIDATE_RECORDS"`
	RenderWorkers   int           `mapstructure:"RENDER_WORKERS"`
	CacheTTL        time.Duration `mapstructure:"CACHE_TTL"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("REDIS_URL", "localhost:6379")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "shogi_csa")
	v.SetDefault("OUTPUT_ENCODING", "utf-8")
	v.SetDefault("PAD_HOUR", false)
	v.SetDefault("VALIDATE_RECORDS", true)
	v.SetDefault("RENDER_WORKERS", 4)
	v.SetDefault("CACHE_TTL", "24h")
}

// Setup reads cfgPath (an .env file) on top of the defaults. Environment
// variables win over both. A missing file is not an error.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
