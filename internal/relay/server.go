package relay

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/skarimo/downwatch/internal/notify"
	relaymw "github.com/skarimo/downwatch/internal/relay/middleware"
)

// Fallbacks when the upstream push service omits the fields.
const (
	defaultMonitorName  = "A monitor"
	defaultAlertDetails = "changed status"
)

// Server forwards push-style webhook alerts as chat notifications. It keeps
// no state; each request is independent of polling-mode runs.
type Server struct {
	Logger   *zap.Logger
	Notifier notify.Notifier
}

func NewServer(logger *zap.Logger, n notify.Notifier) *Server {
	return &Server{Logger: logger, Notifier: n}
}

func (s *Server) Router(apiKeys []string) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// UptimeRobot-style webhooks arrive as GET or POST with query parameters.
	r.Group(func(r chi.Router) {
		r.Use(relaymw.RequireKey(apiKeys))
		r.Get("/alert", s.handleAlert)
		r.Post("/alert", s.handleAlert)
	})

	return r
}

func (s *Server) handleAlert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("monitorFriendlyName")
	if name == "" {
		name = defaultMonitorName
	}
	details := q.Get("alertDetails")
	if details == "" {
		details = defaultAlertDetails
	}

	body := fmt.Sprintf("🚨 Website Alert! 🚨\n\n%s %s.", name, details)
	res := s.Notifier.Send(r.Context(), body)

	if res.Status != notify.Delivered {
		s.Logger.Error("relay_send_failed",
			zap.String("monitor", name),
			zap.String("status", res.Status.String()),
			zap.Error(res.Err),
		)
		http.Error(w, "Failed to send message.", http.StatusInternalServerError)
		return
	}

	s.Logger.Info("relay_sent",
		zap.String("monitor", name),
		zap.String("sid", res.MessageID),
	)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Message sent successfully."))
}
