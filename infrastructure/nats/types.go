package nats

import "time"

const (
	// StreamName keeps a replayable history of order events.
	StreamName = "ORDERS"

	SubjectOrderCreated   = "orders.created"
	SubjectOrderStatus    = "orders.status_changed"
	SubjectOrdersWildcard = "orders.>"

	streamMaxAge = 7 * 24 * time.Hour
)

// StreamInfo summarizes the ORDERS stream for the health endpoint.
type StreamInfo struct {
	Name     string `json:"name"`
	Messages uint64 `json:"messages"`
	Bytes    uint64 `json:"bytes"`
	FirstSeq uint64 `json:"first_seq"`
	LastSeq  uint64 `json:"last_seq"`
}
