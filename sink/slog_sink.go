// Package sink provides EventSink implementations for the relay: a
// structured-log sink for services and a coloured console sink for an
// operator terminal.
package sink

import (
	"log/slog"

	"chat-relay/domain"
)

// SlogSink forwards relay events to a structured logger.
type SlogSink struct {
	log *slog.Logger
}

func NewSlogSink(log *slog.Logger) *SlogSink {
	return &SlogSink{log: log}
}

func (s *SlogSink) OnServerStarted(port int) {
	s.log.Info("relay started", "port", port)
}

func (s *SlogSink) OnServerStopped() {
	s.log.Info("relay stopped")
}

func (s *SlogSink) OnPeerConnected(contact domain.Contact, live []domain.Contact) {
	s.log.Info("peer connected", "contact", contact.Describe(), "live", len(live))
}

func (s *SlogSink) OnPeerDisconnected(contact domain.Contact, live []domain.Contact) {
	s.log.Info("peer disconnected", "contact", contact.Describe(), "live", len(live))
}

func (s *SlogSink) OnLog(text string) {
	s.log.Info(text)
}
