package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTSecret     string `env:"JWT_SECRET"`
	// RedisAddress пустой адрес - блокировки кошельков в памяти процесса.
	RedisAddress string `env:"REDIS_ADDRESS"`
	// MongoURI пустой URI отключает хранилище превью и цифровых файлов.
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE"`
	// PaymentGatewayAddress включает подтверждение пополнений платежным шлюзом.
	PaymentGatewayAddress string `env:"PAYMENT_GATEWAY_ADDRESS"`
	CORSAllowedOrigins    string `env:"CORS_ALLOWED_ORIGINS"`
}

// AllowedOrigins разбирает CORSAllowedOrigins, пустые элементы отбрасываются.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// LoadConfig собирает конфиг из флагов и переменных окружения, переменные окружения приоритетнее.
// Перед разбором подгружается .env, если он есть.
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	var flagsConfig Config
	loadFlags(flag.CommandLine, &flagsConfig, os.Args[1:])

	return buildConfig(&flagsConfig)
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func buildConfig(flagsConfig *Config) (*Config, error) {
	var envConfig Config
	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	conf := mergeConfig(&envConfig, flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	return conf, nil
}

// loadDotEnv не перезаписывает уже заданные переменные окружения. Отсутствие файла не ошибка.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %s", path, err.Error())
	}
	return nil
}

func loadFlags(fs *flag.FlagSet, flagConfig *Config, args []string) {
	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fs.StringVar(&flagConfig.JWTSecret, "j", "", "JWT secret key")
	fs.StringVar(&flagConfig.RedisAddress, "r", "", "Redis address in format host:port")
	fs.StringVar(&flagConfig.MongoURI, "mongo", "", "MongoDB URI")
	fs.StringVar(&flagConfig.MongoDatabase, "mongo-db", "bookstore", "MongoDB database name")
	fs.StringVar(&flagConfig.PaymentGatewayAddress, "g", "", "Payment gateway base URL")
	fs.StringVar(&flagConfig.CORSAllowedOrigins, "cors", "*", "Comma separated list of allowed CORS origins")

	_ = fs.Parse(args)
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:            defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:           defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:         defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:             defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		RedisAddress:          defaultIfBlank(envConfig.RedisAddress, flagsConfig.RedisAddress),
		MongoURI:              defaultIfBlank(envConfig.MongoURI, flagsConfig.MongoURI),
		MongoDatabase:         defaultIfBlank(envConfig.MongoDatabase, flagsConfig.MongoDatabase),
		PaymentGatewayAddress: defaultIfBlank(envConfig.PaymentGatewayAddress, flagsConfig.PaymentGatewayAddress),
		CORSAllowedOrigins:    defaultIfBlank(envConfig.CORSAllowedOrigins, flagsConfig.CORSAllowedOrigins),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
