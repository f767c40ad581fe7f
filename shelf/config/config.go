package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/myshelf/pkg/kafka"
	"github.com/Astemirdum/myshelf/pkg/logger"
	"github.com/Astemirdum/myshelf/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"SHELF_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"SHELF_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Rental struct {
	MaxRenewals         int  `envconfig:"RENTAL_MAX_RENEWALS" default:"2"`
	RenewalDays         int  `envconfig:"RENTAL_RENEWAL_DAYS" default:"7"`
	DueSoonDays         int  `envconfig:"RENTAL_DUE_SOON_DAYS" default:"3"`
	MaxBorrowLimit      int  `envconfig:"RENTAL_MAX_BORROW_LIMIT" default:"5"`
	LateFeePerDay       int  `envconfig:"RENTAL_LATE_FEE_PER_DAY" default:"100"`
	AllowOverdueRenewal bool `envconfig:"RENTAL_ALLOW_OVERDUE_RENEWAL" default:"true"`
	// ReminderInterval of zero turns the reminder sweep off.
	ReminderInterval time.Duration `envconfig:"SHELF_REMINDER_INTERVAL" default:"1h"`
}

const (
	SourceEmbedded = "embedded"
	SourcePostgres = "postgres"
)

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Rental   Rental
	Source   string      `envconfig:"CATALOG_SOURCE" default:"embedded"`
	Database postgres.DB `yaml:"db"`
	Kafka    kafka.Config
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options set values that the
// environment may still override.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	masked := *cfg
	if masked.Database.Password != "" {
		masked.Database.Password = "***"
	}
	jscfg, _ := json.MarshalIndent(masked, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
