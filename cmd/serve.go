package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mouthful-foods/vendor-mailer/internal/api"
	"github.com/mouthful-foods/vendor-mailer/internal/build"
	"github.com/mouthful-foods/vendor-mailer/internal/config"
	"github.com/mouthful-foods/vendor-mailer/internal/eventbus"
	"github.com/mouthful-foods/vendor-mailer/internal/identity"
	"github.com/mouthful-foods/vendor-mailer/internal/logger"
	"github.com/mouthful-foods/vendor-mailer/internal/notification"
	"github.com/mouthful-foods/vendor-mailer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the HTTP API server for vendor email notifications.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "HTTP server port (overrides PORT env var)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// A local .env is optional; deployments configure the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}

	log := logger.New(cfg.SlogLevel())
	log.Info("starting vendor-mailer", "version", build.String(), "port", cfg.Port)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	mode := notification.ChooseMode(cfg.EmailUser, cfg.EmailPass)
	sender := notification.Provision(ctx, cfg.EmailUser, cfg.EmailPass, log)

	deleter := identity.New(ctx, identity.Credentials{
		ProjectID:   cfg.FirebaseProjectID,
		ClientEmail: cfg.FirebaseClientEmail,
		PrivateKey:  cfg.PrivateKeyPEM(),
	}, log)

	bus := eventbus.New(0, log)
	defer bus.Close()
	bus.Subscribe(func(e eventbus.Event) {
		log.Info("event", "type", e.Type, "payload", e.Payload)
	})

	apiSrv := api.New(sender, deleter, bus, mode == notification.ModeConfigured, log)
	srv := server.New(apiSrv, cfg.AllowedOrigins(), cfg.Port, log)

	fmt.Fprintf(os.Stderr, "Email service running on http://localhost:%d\n", cfg.Port)
	return srv.Run(ctx)
}
