package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"homestay-backend/store"
)

// Connect opens the slot backend selected by STORE_DRIVER ("mysql" or
// "memory"), builds the store around it and seeds the demo dataset.
func Connect() (*store.Store, error) {
	driver := strings.ToLower(EnvOrDefault("STORE_DRIVER", "mysql"))

	var backend store.Backend
	switch driver {
	case "memory":
		backend = store.NewMemoryBackend()
		log.Println("⚠️  STORE_DRIVER=memory: records will not survive a restart")
	case "mysql":
		dsn, err := resolveMySQLDSN()
		if err != nil {
			return nil, err
		}
		gormLogger := logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold: time.Second,
				LogLevel:      logger.Warn,
				Colorful:      true,
			},
		)
		db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
		if err != nil {
			return nil, err
		}
		gb := store.NewGormBackend(db)
		if err := gb.Migrate(); err != nil {
			return nil, err
		}
		backend = gb
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want mysql or memory)", driver)
	}

	st := store.New(backend)
	if err := SeedStore(st); err != nil {
		return nil, err
	}
	return st, nil
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := EnvOrDefault("DB_USER", "root")
	pass := EnvOrDefault("DB_PASS", "")
	host := EnvOrDefault("DB_HOST", "127.0.0.1")
	port := EnvOrDefault("DB_PORT", "3306")
	dbName := EnvOrDefault("DB_NAME", "homestay_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}
