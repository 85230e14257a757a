package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/yourusername/iq-api/internal/config"
	"github.com/yourusername/iq-api/pkg/database"
)

// Утилита миграций: up (по умолчанию), down, force N.
// force снимает флаг dirty после упавшей миграции.
func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [up|down|force N|version]\n", os.Args[0])
	}
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Не удалось прочитать .env: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	dbCfg, err := config.LoadDatabase(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", dbCfg.PostgresConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	m, err := database.NewMigrator(db, dbCfg.MigrationsPath)
	if err != nil {
		log.Fatalf("Failed to create migrator: %v", err)
	}

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "force":
		if flag.NArg() < 2 {
			flag.Usage()
			os.Exit(2)
		}
		version, convErr := strconv.Atoi(flag.Arg(1))
		if convErr != nil {
			log.Fatalf("Invalid version %q: %v", flag.Arg(1), convErr)
		}
		log.Printf("Принудительно выставляем версию миграций %d", version)
		err = m.Force(version)
	case "version":
		version, dirty, verErr := m.Version()
		if errors.Is(verErr, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied")
			return
		}
		if verErr != nil {
			log.Fatalf("Failed to read version: %v", verErr)
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
		return
	default:
		flag.Usage()
		os.Exit(2)
	}

	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Println("Изменений нет, база данных уже актуальна.")
	case err != nil:
		log.Fatalf("Migration %s failed: %v", command, err)
	default:
		log.Printf("Миграция %s выполнена.", command)
	}
}
