package webhook

import (
	"encoding/json"
	"net/http"
	"sync"

	"linebook-service/internal/domain/entity"
	"linebook-service/internal/usecase"
	"linebook-service/pkg/logger"

	linewebhook "github.com/line/line-bot-sdk-go/v8/linebot/webhook"
)

// Handler receives webhook deliveries from the messaging platform and fans
// the events out to the dispatcher.
type Handler struct {
	channelSecret string
	dispatcher    *usecase.Dispatcher
	logger        logger.Logger
}

// NewHandler creates a new webhook handler
func NewHandler(channelSecret string, dispatcher *usecase.Dispatcher, logger logger.Logger) *Handler {
	return &Handler{
		channelSecret: channelSecret,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

type testWebhookBody struct {
	Events []entity.MessageEvent `json:"events"`
}

// Webhook is the production endpoint. Request verification (signature
// check against the channel secret) happens in the SDK parser; anything it
// rejects never reaches the dispatcher.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	callback, err := linewebhook.ParseRequest(h.channelSecret, r)
	if err != nil {
		h.logger.Warn("Rejected webhook delivery", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid webhook request"})
		return
	}

	events := make([]*entity.MessageEvent, 0, len(callback.Events))
	for _, ev := range callback.Events {
		if me := fromCallbackEvent(ev); me != nil {
			events = append(events, me)
		}
	}

	h.dispatchAll(r, events)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// TestWebhook accepts the same events payload as the production endpoint
// without signature verification. Local testing only.
func (h *Handler) TestWebhook(w http.ResponseWriter, r *http.Request) {
	var body testWebhookBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if body.Events == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "events field is required"})
		return
	}

	events := make([]*entity.MessageEvent, 0, len(body.Events))
	for i := range body.Events {
		events = append(events, &body.Events[i])
	}

	h.dispatchAll(r, events)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// dispatchAll processes every event of a delivery concurrently and waits
// for all of them before the delivery is acknowledged. Failures are
// contained per event inside the dispatcher, so one bad event never takes
// its siblings down.
func (h *Handler) dispatchAll(r *http.Request, events []*entity.MessageEvent) {
	var wg sync.WaitGroup
	for _, event := range events {
		wg.Add(1)
		go func(ev *entity.MessageEvent) {
			defer wg.Done()
			h.dispatcher.DispatchEvent(r.Context(), ev)
		}(event)
	}
	wg.Wait()
}

// fromCallbackEvent converts an SDK webhook event into the transport-neutral
// DTO. Only text message events survive; everything else maps to nil.
func fromCallbackEvent(ev linewebhook.EventInterface) *entity.MessageEvent {
	messageEvent, ok := ev.(linewebhook.MessageEvent)
	if !ok {
		return nil
	}

	out := &entity.MessageEvent{
		Type:       entity.EventTypeMessage,
		ReplyToken: messageEvent.ReplyToken,
	}

	if source, ok := messageEvent.Source.(linewebhook.UserSource); ok {
		out.Source.UserID = source.UserId
	}

	if text, ok := messageEvent.Message.(linewebhook.TextMessageContent); ok {
		out.Message = entity.MessageContent{
			Type: entity.MessageTypeText,
			Text: text.Text,
		}
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
