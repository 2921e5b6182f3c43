package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	// EventScoreAdded fires after a score lands in the store; subscribers
	// post the confirmation to the league channel.
	EventScoreAdded EventType = "score-added"
)
