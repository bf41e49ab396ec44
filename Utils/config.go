package Utils

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values
type Config struct {
	AppPort        string `mapstructure:"APP_PORT"`
	Env            string `mapstructure:"ENV"`
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	TokenHourLife  int    `mapstructure:"TOKEN_HOUR_LIFESPAN"`
	StorageDriver  string `mapstructure:"STORAGE_DRIVER"`
	DataDir        string `mapstructure:"DATA_DIR"`
	DatabaseDSN    string `mapstructure:"DATABASE_DSN"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int    `mapstructure:"REDIS_DB"`
	ReminderMins   int    `mapstructure:"REMINDER_INTERVAL_MINUTES"`
	LoginRateRPS   float64 `mapstructure:"LOGIN_RATE_RPS"`
	LoginRateBurst int    `mapstructure:"LOGIN_RATE_BURST"`
}

// Global variable to store configuration
var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Read environment variables
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("APP_PORT", "3005")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("TOKEN_HOUR_LIFESPAN", 24)
	viper.SetDefault("STORAGE_DRIVER", "file")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("REMINDER_INTERVAL_MINUTES", 1)
	viper.SetDefault("LOGIN_RATE_RPS", 5)
	viper.SetDefault("LOGIN_RATE_BURST", 10)

	// Read configuration file if available
	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	// Unmarshal into AppConfig struct
	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// GetEnv returns the application environment
func GetEnv() string {
	return AppConfig.Env
}

// IsProduction checks if the environment is production
func IsProduction() bool {
	return GetEnv() == "production"
}
