// Initializing common application configuration
package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	App      AppConfig      `mapstructure:"app"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Database DatabaseConfig `mapstructure:"database"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Host        string        `mapstructure:"host"`
	Port        string        `mapstructure:"port"`
	Mode        string        `mapstructure:"mode"`
	Timeout     time.Duration `mapstructure:"timeout"`
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
}

type AppConfig struct {
	Title string `mapstructure:"title"`

	// TotalTickets is N, the whole pool. OnlineTickets caps the window sold
	// through the site; zero means the pool is not partitioned.
	TotalTickets  int `mapstructure:"total_tickets"`
	OnlineTickets int `mapstructure:"online_tickets"`

	TicketPrice  string `mapstructure:"ticket_price"`
	ResellPolicy string `mapstructure:"resell_policy"`
}

type AdminConfig struct {
	// Key is compared verbatim. KeyHash, when set, takes precedence and is
	// checked as a bcrypt hash so the plain secret stays out of the config.
	Key     string `mapstructure:"key"`
	KeyHash string `mapstructure:"key_hash"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type MetricsConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	CollectInterval time.Duration `mapstructure:"collect_interval"`
}

func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	bindEnv(viperInstance)

	err := viperInstance.ReadInConfig()

	if err != nil {
		return nil, err
	}
	return viperInstance, nil
}

// bindEnv maps the environment names the deployment scripts already export.
func bindEnv(v *viper.Viper) {
	v.BindEnv("app.title", "RAFFLE_TITLE")
	v.BindEnv("app.total_tickets", "TOTAL_NUMBERS")
	v.BindEnv("app.online_tickets", "ONLINE_NUMBERS")
	v.BindEnv("app.ticket_price", "TICKET_PRICE")
	v.BindEnv("admin.key", "ADMIN_KEY")
	v.BindEnv("admin.key_hash", "ADMIN_KEY_HASH")
	v.BindEnv("server.host", "HOST")
	v.BindEnv("server.port", "PORT")
	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.port", "DB_PORT")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.dbname", "DB_NAME")
	v.BindEnv("database.sslmode", "DB_SSLMODE")
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode config into struct, %v", err)
		return nil, err
	}
	return &c, nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
