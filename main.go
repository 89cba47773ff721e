package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load ./.env if present before reading vars; existing env wins.
	_ = godotenv.Load()
	cfg = loadConfig()
	initLogger(cfg.LogMode)
	defer logger.Sync()

	// Support a lightweight migrate command: `./glacierwatch migrate`
	// runs AutoMigrate and exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		logger.Info("migration completed")
		return
	}

	initDB()

	r := gin.Default()
	r.Use(cors.Default())
	setupRoutes(r)

	logger.Infow("starting server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalw("server exited", "error", err)
	}
}
