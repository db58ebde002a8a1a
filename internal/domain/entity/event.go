package entity

// Event types dispatched by the webhook transport
const (
	EventTypeMessage = "message"
	MessageTypeText  = "text"
)

// MessageContent is the message sub-object of an inbound event
type MessageContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// EventSource identifies who sent the event
type EventSource struct {
	UserID string `json:"userId"`
}

// MessageEvent is a transport-neutral inbound event. The JSON tags match
// the platform's callback payload so the test webhook can decode a raw
// body directly into it.
type MessageEvent struct {
	Type       string         `json:"type"`
	Message    MessageContent `json:"message"`
	Source     EventSource    `json:"source"`
	ReplyToken string         `json:"replyToken"`
}

// IsTextMessage reports whether this event should be dispatched at all;
// everything else is silently ignored.
func (e *MessageEvent) IsTextMessage() bool {
	return e.Type == EventTypeMessage && e.Message.Type == MessageTypeText
}
