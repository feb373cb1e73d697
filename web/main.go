package main

import (
	"context"
	"encoding/base64"
	"log"

	"github.com/gin-gonic/gin"

	"factorygate.in/factorygate/infrastructure/communication"
	"factorygate.in/factorygate/infrastructure/devops"
	"factorygate.in/factorygate/store"
	"factorygate.in/factorygate/web/handlers"
	"factorygate.in/factorygate/web/middlewares"
)

func main() {
	ctx := context.Background()

	cfg, err := devops.LoadAppConfig(ctx)
	if err != nil {
		log.Fatal(err)
	}

	secret, err := base64.StdEncoding.DecodeString(cfg.SigningSecret)
	if err != nil {
		log.Fatal("Failed to decode signing secret:", err)
	}

	st, err := store.Open(cfg.DSN, cfg.MaxConnections)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	notifier := communication.ConnectSlack(communication.SlackOption{
		InfoChannelID:  cfg.Slack.InfoChannel,
		ErrorChannelID: cfg.Slack.ErrorChannel,
	})

	h := handlers.New(st, notifier, secret, cfg.TokenTTL)

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	{
		api.POST("/punch", h.Punch)
		api.GET("/workers", h.Workers)
		api.GET("/emps", h.Employees)
		api.GET("/settings", h.Settings)
		api.POST("/supervisor/auth", h.SupervisorAuth)
	}

	supervisor := r.Group("/api/supervisor")
	supervisor.Use(middlewares.SupervisorAuth(secret))
	{
		supervisor.GET("/status", h.Status)
		supervisor.GET("/unauthorized", h.Unauthorized)
		supervisor.GET("/export", h.Export)
	}

	r.Run("0.0.0.0:" + cfg.Port)
}
