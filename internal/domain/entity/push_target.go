package entity

import "github.com/google/uuid"

// PushTarget maps an owner to their registered device push token.
// Token is empty when the owner has no registered device; such owners'
// notifications stay pending and remain visible in-app only.
type PushTarget struct {
	OwnerID uuid.UUID `json:"owner_id"`
	Token   string    `json:"token"`
}
