package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/skarimo/downwatch/internal/config"
	"github.com/skarimo/downwatch/internal/logging"
	"github.com/skarimo/downwatch/internal/notify"
	"github.com/skarimo/downwatch/internal/relay"
)

func main() {
	cfg := config.LoadRelay()

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	notifier := notify.NewWhatsApp(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.Sender, cfg.Recipient, logger)
	srv := relay.NewServer(logger, notifier)

	logger.Info("relay_listen", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, srv.Router(cfg.APIKeys)); err != nil {
		log.Fatal(err)
	}
}
