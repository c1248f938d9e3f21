package main

import (
	"log/slog"
	"os"
	"time"
	_ "time/tzdata" // post timestamps need Asia/Shanghai even without a host tz database

	"blog/config"
	"blog/db"
	"blog/handlers"
	"blog/models"
	"blog/utils"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const sessionCookieName = "token"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Bad configuration", "err", err)
		os.Exit(1)
	}
	logLevel := slog.LevelInfo
	if cfg.DebugMode {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)

	database, err := db.Connect(cfg)
	if err != nil {
		log.Error("Cannot open database", "err", err)
		os.Exit(1)
	}
	if err := models.Migrate(database); err != nil {
		log.Error("Migration failed", "err", err)
		os.Exit(1)
	}

	sessionKey := cfg.SessionKey
	if sessionKey == "" {
		// Sessions won't survive a restart without a configured key
		log.Warn("SESSION_KEY not set, generating a random one")
		sessionKey = utils.RandKey(32)
	}

	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if cfg.DebugMode {
		router.Use(utils.ErrorLogMiddleware(log))
	}

	// HTML templates
	router.LoadHTMLGlob(cfg.TemplatesGlob)

	cookieStore := gormsessions.NewStore(database, true, []byte(sessionKey))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: int(cfg.SessionMaxAge / time.Second)})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !cfg.DebugMode {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}

	h := &handlers.Handlers{
		Posts: &models.PostRepo{DB: database},
		Users: &models.UserRepo{DB: database},
		Log:   log,
	}
	handlers.Register(router, h)

	log.Info("Starting server", "bind", cfg.BindAddress)
	if len(cfg.TLSDomains) > 0 {
		err = autotls.Run(router, cfg.TLSDomains...)
	} else {
		err = router.Run(cfg.BindAddress)
	}
	log.Error("Server stopped", "err", err)
	os.Exit(1)
}
