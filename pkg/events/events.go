package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

const (
	PatientRegistered = "auth.patient.registered"
	AccountLoggedIn   = "auth.login"
)

type PatientRegisteredEvent struct {
	AccountID    uuid.UUID `json:"account_id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullname"`
	RegisteredAt time.Time `json:"registered_at"`
}

type LoginEvent struct {
	AccountID  uuid.UUID `json:"account_id"`
	Role       string    `json:"role"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

type NATSPublisher struct {
	conn *nats.Conn
	log  *logrus.Logger
}

func NewNATSPublisher(url string, log *logrus.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("hospital-management-api"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSPublisher{conn: conn, log: log}, nil
}

func (n *NATSPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	n.log.WithField("subject", subject).Debug("Publishing event")

	return n.conn.Publish(subject, payload)
}

// Close flushes pending messages before closing the connection.
func (n *NATSPublisher) Close() error {
	return n.conn.Drain()
}

// NoopPublisher discards events when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, interface{}) error { return nil }

func (NoopPublisher) Close() error { return nil }
