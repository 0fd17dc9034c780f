package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/antoniofmoraes/nutri-plan/models"
)

type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	Mode       string `env:"APP_MODE" envDefault:"debug"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"nutriplan"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	JWTSecret  string `env:"JWT_SECRET,notEmpty"`
	JWTExpires int    `env:"JWT_EXPIRES_HOURS" envDefault:"168"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`
}

// Load reads .env when present, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// InitDB opens the postgres connection and migrates the schema.
func InitDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.MealPlan{},
		&models.DayPlan{},
		&models.Meal{},
		&models.MealFood{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return db, nil
}
