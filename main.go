package main

import (
	"context"
	"log"
	"time"

	"CeibaCheckIn/config"
	"CeibaCheckIn/global"
	"CeibaCheckIn/repositories"
	"CeibaCheckIn/routes"
	"CeibaCheckIn/services"
	"CeibaCheckIn/utils/redislog"
	"CeibaCheckIn/utils/sheets"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1) Load config from file and/or env
	cfg := config.Load()
	log.Printf("[boot] %s %s starting in %s on :%s", cfg.AppName, global.AppVersion, cfg.Env, cfg.HTTPPort)

	// 2) Redis is always used for app logs; it is also the default guest store.
	rdb := config.InitRedis(cfg)
	rlog := redislog.New(rdb, global.LogsKey, 1000, 7*24*time.Hour)
	rlog.Info("app boot", map[string]string{
		"env":    cfg.Env,
		"port":   cfg.HTTPPort,
		"store":  cfg.StoreDriver,
		"sheets": cfg.SheetsDriver,
	})

	// 3) Guest store by store_driver.
	var repo repositories.GuestRepository
	switch cfg.StoreDriver {
	case "redis":
		repo = repositories.NewGuestCache(rdb, cfg.GuestsKey)
	case "db":
		repo = repositories.NewGuestRepository(config.InitDB(cfg))
	default:
		log.Fatalf("[boot] unknown store_driver: %s", cfg.StoreDriver)
	}

	// 4) Spreadsheet appender for check-ins by sheets_driver.
	appender := newAppender(cfg)

	// 5) Services (dependency injection).
	guestSvc := services.NewGuestService(repo, cfg.SeedCSV, rlog)
	checkInSvc := services.NewCheckInService(appender, rlog)
	authSvc := services.NewAuthService(cfg.StaffPasswordHash, cfg.JWTSecret, cfg.JWTExpiry, rlog)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	n, err := guestSvc.Boot(ctx)
	cancel()
	if err != nil {
		log.Fatalf("[boot] guest list: %v", err)
	}
	log.Printf("[boot] %d guests ready", n)

	if cfg.JWTSecret == "" || cfg.StaffPasswordHash == "" {
		log.Printf("[boot] jwt_secret or staff_password_hash empty: staff login disabled")
	}

	// 6) Gin engine and routes
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	_ = r.SetTrustedProxies(nil) // trust none
	routes.Setup(r, routes.Deps{
		Guests:    guestSvc,
		CheckIn:   checkInSvc,
		Auth:      authSvc,
		Log:       rlog,
		JWTSecret: cfg.JWTSecret,
		SeedCSV:   cfg.SeedCSV,
	})

	// 7) Start HTTP server on configured port; fatal if it fails to bind.
	rlog.Info("http server start", map[string]string{"port": cfg.HTTPPort})
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		rlog.Error("http server error", map[string]string{"err": err.Error()})
		log.Fatal(err)
	}
}

func newAppender(cfg *config.Config) sheets.Appender {
	switch cfg.SheetsDriver {
	case "google":
		a, err := sheets.NewGoogleAppender(sheets.GoogleConfig{
			SpreadsheetID: cfg.SheetID,
			Range:         cfg.SheetRange,
			ClientEmail:   cfg.GoogleClientEmail,
			PrivateKey:    cfg.GooglePrivateKey,
		})
		if err != nil {
			log.Fatalf("[sheets] google appender: %v", err)
		}
		return a
	case "xlsx":
		return sheets.NewWorkbookAppender(cfg.SheetsWorkbookPath, cfg.SheetsWorkbookSheet)
	case "none", "":
		return sheets.Disabled()
	default:
		log.Fatalf("[sheets] unknown sheets_driver: %s", cfg.SheetsDriver)
	}
	return nil
}
