package config

import (
	"os"
	"time"
)

const (
	// DefaultAPIURL - продакшн эндпоинт Sherlock API
	DefaultAPIURL = "https://api.sherlockdomains.com"
	// DefaultTimeout - явный таймаут HTTP клиента на connect+read
	DefaultTimeout = 10 * time.Second

	// EnvAPIURL переопределяет базовый URL API
	EnvAPIURL = "SHERLOCK_API_URL"
	// EnvKeyPassphrase включает шифрование приватного ключа в локальном хранилище
	EnvKeyPassphrase = "SHERLOCK_KEY_PASSPHRASE"
)

// Config содержит конфигурацию клиента, собираемую один раз при старте.
// Переменные окружения читаются только здесь, не в момент вызова.
type Config struct {
	APIURL        string
	DBPath        string
	KeyPassphrase string
	Timeout       time.Duration
}

// New builds a Config from explicit values, resolving environment overrides
// once. An empty apiURL falls back to SHERLOCK_API_URL, then the default.
func New(apiURL, dbPath string) Config {
	if apiURL == "" {
		apiURL = os.Getenv(EnvAPIURL)
	}
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	return Config{
		APIURL:        apiURL,
		DBPath:        dbPath,
		KeyPassphrase: os.Getenv(EnvKeyPassphrase),
		Timeout:       DefaultTimeout,
	}
}
