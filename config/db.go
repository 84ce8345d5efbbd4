// picks the GORM driver by DBDriver. Repository/service code does not change with the DB.

package config

import (
	"log"

	"CeibaCheckIn/models" // models to auto-migrate

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// GORM drivers (we open one depending on cfg.DBDriver).
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
)

// dialector maps cfg.DBDriver to a GORM dialector. It fails fast on a missing DSN.
func dialector(cfg *Config) gorm.Dialector {
	switch cfg.DBDriver {
	case "mysql":
		if cfg.MySQLDSN == "" {
			log.Fatal("[db] mysql selected but mysql_dsn empty")
		}
		return mysql.Open(cfg.MySQLDSN)
	case "postgres":
		if cfg.PostgresDSN == "" {
			log.Fatal("[db] postgres selected but postgres_dsn empty")
		}
		return postgres.Open(cfg.PostgresDSN)
	case "sqlite":
		// SQLite only needs a file path; created if missing.
		return sqlite.Open(cfg.SQLitePath)
	case "sqlserver":
		if cfg.SQLServerDSN == "" {
			log.Fatal("[db] sqlserver selected but sqlserver_dsn empty")
		}
		return sqlserver.Open(cfg.SQLServerDSN)
	default:
		log.Fatalf("[db] unknown DBDriver: %s", cfg.DBDriver)
	}
	return nil
}

// InitDB opens the configured database and migrates the guests table.
// Only called when store_driver=db.
func InitDB(cfg *Config) *gorm.DB {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn), // Info is very verbose
	}

	db, err := gorm.Open(dialector(cfg), gormCfg)
	if err != nil {
		log.Fatalf("[db] connection error: %v", err)
	}

	if err := db.AutoMigrate(&models.Guest{}, &models.GuestCollection{}); err != nil {
		log.Fatalf("[db] automigrate error: %v", err)
	}
	log.Printf("[db] connected: driver=%s", cfg.DBDriver)
	return db
}
