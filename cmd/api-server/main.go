package main

import (
	"fmt"
	"os"

	"moodmap/config"
	"moodmap/pkg/log"
	"moodmap/pkg/server"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func main() {
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetLevel(cfg.App.LogLevel)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "mood map query service",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					appProvider, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "config",
				Usage: "print effective config",
				Action: func(ctx *cli.Context) error {
					out, err := yaml.Marshal(cfg.Redacted())
					if err != nil {
						return err
					}
					_, err = fmt.Fprint(ctx.App.Writer, string(out))
					return err
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
