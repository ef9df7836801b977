package service

import "context"

// PushMessage is one outbound push notification in the gateway's wire shape.
type PushMessage struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
	Sound string            `json:"sound,omitempty"`
}

// PushTicket is the gateway's per-message receipt. Delivery confirmation is
// out of scope; tickets are logged only.
type PushTicket struct {
	Status  string `json:"status"` // "ok" or "error"
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// PushGateway hands batches of push messages to the external push service.
// One call covers at most the gateway's batch limit (100 messages).
// "Sent" means handed to the gateway, not confirmed delivered.
type PushGateway interface {
	SendBatch(ctx context.Context, messages []PushMessage) ([]PushTicket, error)
}
