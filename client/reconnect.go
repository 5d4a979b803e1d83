package client

import (
	"context"
	"log/slog"
	"math"
	"time"
)

// State names one phase of the reconnection machine.
type State string

const (
	StateDisconnected State = "DISCONNECTED"
	StateBackoff      State = "BACKOFF"
	StateConnecting   State = "CONNECTING"
	StateConnected    State = "CONNECTED"
)

// BackoffPolicy controls how failed connection attempts are retried.
type BackoffPolicy struct {
	InitialDelay time.Duration
	Multiplier   float64
	MaxDelay     time.Duration
}

// DefaultBackoffPolicy returns a policy with 1s initial delay, 2x
// multiplier and a 30s cap.
func DefaultBackoffPolicy() BackoffPolicy {
	return BackoffPolicy{
		InitialDelay: 1 * time.Second,
		Multiplier:   2.0,
		MaxDelay:     30 * time.Second,
	}
}

// NextDelay returns the backoff delay for the given attempt (1-indexed):
// InitialDelay * Multiplier^(attempt-1), capped at MaxDelay.
func (p BackoffPolicy) NextDelay(attempt int) time.Duration {
	delay := float64(p.InitialDelay) * math.Pow(p.Multiplier, float64(attempt-1))
	if delay > float64(p.MaxDelay) {
		return p.MaxDelay
	}
	return time.Duration(delay)
}

// Reconnector keeps a client connected: DISCONNECTED -> BACKOFF(n) ->
// CONNECTING -> CONNECTED, driven by a timer, and back to BACKOFF when
// the live connection drops.
type Reconnector struct {
	client  *Client
	policy  BackoffPolicy
	log     *slog.Logger
	onState func(State)
}

func NewReconnector(client *Client, policy BackoffPolicy, log *slog.Logger, onState func(State)) *Reconnector {
	return &Reconnector{client: client, policy: policy, log: log, onState: onState}
}

// Run drives the machine until the context is cancelled. onConnected is
// invoked after every successful (re)connection, e.g. to replay LOGIN.
func (r *Reconnector) Run(ctx context.Context, onConnected func() error) {
	attempt := 0
	r.transition(StateDisconnected)

	for {
		if attempt > 0 {
			r.transition(StateBackoff)
			delay := r.policy.NextDelay(attempt)
			r.log.Debug("waiting before reconnect", "attempt", attempt, "delay", delay)
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
		}

		r.transition(StateConnecting)
		done, err := r.client.Connect()
		if err != nil {
			attempt++
			r.log.Warn("connection attempt failed", "attempt", attempt, "error", err)
			continue
		}

		r.transition(StateConnected)
		attempt = 0
		if onConnected != nil {
			if err := onConnected(); err != nil {
				r.log.Warn("post-connect setup failed", "error", err)
			}
		}

		select {
		case <-ctx.Done():
			r.client.Close()
			return
		case <-done:
			attempt = 1
			r.transition(StateDisconnected)
		}
	}
}

func (r *Reconnector) transition(state State) {
	if r.onState != nil {
		r.onState(state)
	}
}
