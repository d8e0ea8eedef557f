package notify

import (
	"context"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// MessageCreator is the slice of the Twilio REST API the notifier uses.
// Satisfied by (*twilio.RestClient).Api; tests substitute a fake.
type MessageCreator interface {
	CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error)
}

// WhatsApp delivers messages through Twilio's WhatsApp bridge. With absent
// credentials it is still a valid notifier: every Send is a Skipped.
type WhatsApp struct {
	From   string
	To     string
	Logger *zap.Logger

	api MessageCreator
}

func NewWhatsApp(accountSID, authToken, from, to string, logger *zap.Logger) *WhatsApp {
	w := &WhatsApp{From: from, To: to, Logger: logger}
	if accountSID == "" || authToken == "" {
		return w
	}
	rc := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	w.api = rc.Api
	return w
}

// NewWhatsAppWithAPI is used by tests to inject a fake message API.
func NewWhatsAppWithAPI(api MessageCreator, from, to string, logger *zap.Logger) *WhatsApp {
	return &WhatsApp{From: from, To: to, Logger: logger, api: api}
}

func (w *WhatsApp) Send(ctx context.Context, body string) SendResult {
	if w.api == nil {
		w.Logger.Warn("notify_skipped", zap.String("reason", "missing messaging credentials"))
		return SendResult{Status: Skipped, Reason: "missing messaging credentials"}
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(w.From)
	params.SetTo(w.To)
	params.SetBody(body)

	msg, err := w.api.CreateMessage(params)
	if err != nil {
		w.Logger.Error("notify_failed", zap.Error(err))
		return SendResult{Status: Failed, Err: err}
	}

	sid := ""
	if msg != nil && msg.Sid != nil {
		sid = *msg.Sid
	}
	w.Logger.Info("notify_delivered", zap.String("sid", sid))
	return SendResult{Status: Delivered, MessageID: sid}
}
