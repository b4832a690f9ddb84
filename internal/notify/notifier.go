// Package notify is the outward collaborator boundary for push
// notifications. The engine only queues structured requests; delivery is
// owned by an external worker reading the queue.
package notify

import (
	"context"

	"github.com/google/uuid"
)

type Audience string

const (
	AudienceAdmins Audience = "admins"
	AudienceBarber Audience = "barber"
	AudienceUser   Audience = "user"
)

// Request is a fire-and-forget notification order. TargetID carries the
// barber or user id when the audience is not "admins".
type Request struct {
	ID       string   `json:"id"`
	Audience Audience `json:"audience"`
	TargetID uint     `json:"target_id,omitempty"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
}

func NewRequest(audience Audience, targetID uint, title, body string) Request {
	return Request{
		ID:       uuid.NewString(),
		Audience: audience,
		TargetID: targetID,
		Title:    title,
		Body:     body,
	}
}

// Notifier delivers a request to the external push channel. Implementations
// must never propagate failures into the booking flow.
type Notifier interface {
	Notify(ctx context.Context, req Request)
}

// Nop drops every request; used in tests and broker-less runs.
type Nop struct{}

func (Nop) Notify(context.Context, Request) {}
