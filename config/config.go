package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type LLM struct {
	Provider       string        `yaml:"provider" env:"LLM_PROVIDER" env-default:"gemini"`
	GeminiAPIKey   string        `env:"GEMINI_API_KEY"`
	OpenAIAPIKey   string        `env:"OPENAI_API_KEY"`
	Model          string        `yaml:"model" env:"LLM_MODEL"`
	OpenAIBaseURL  string        `yaml:"open_ai_base_url" env:"OPENAI_BASE_URL"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"LLM_REQUEST_TIMEOUT"`
}

type Telegram struct {
	TelegramAPIToken  string  `env:"TELEGRAM_APITOKEN" env-required:"true"`
	AllowedTelegramID []int64 `yaml:"allowed_telegram_id" env:"ALLOWED_TELEGRAM_ID" env-separator:","`
	IsNotPublic       bool    `yaml:"is_not_public" env:"TELEGRAM_NOT_PUBLIC"`
	Workers           int     `yaml:"workers" env:"TELEGRAM_WORKERS" env-default:"16"`
	// AlbumSettle is how long a media group must stay quiet before its caption is sent.
	AlbumSettle time.Duration `yaml:"album_settle" env:"TELEGRAM_ALBUM_SETTLE" env-default:"1s"`
}

type Redis struct {
	Endpoint string `yaml:"endpoint" env:"REDIS_ENDPOINT" env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

type Storage struct {
	Kind string `yaml:"kind" env:"STORAGE_KIND" env-default:"redis"`
}

type Session struct {
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"SESSION_IDLE_TIMEOUT" env-default:"1h"`
}

type Log struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	FilePath   string `yaml:"file_path" env:"LOG_FILE"`
	Production bool   `yaml:"production" env:"LOG_PRODUCTION"`
}

type Config struct {
	LLM      LLM      `yaml:"llm"`
	Telegram Telegram `yaml:"telegram"`
	Redis    Redis    `yaml:"redis"`
	Storage  Storage  `yaml:"storage"`
	Session  Session  `yaml:"session"`
	Log      Log      `yaml:"log"`
}

// LoadConfig reads cfgPath when given and then applies the environment on top.
func LoadConfig(cfgPath string) (*Config, error) {
	var cfg Config
	if cfgPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadConfig(cfgPath, &cfg); err != nil {
		return nil, err
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
