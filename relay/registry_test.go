package relay

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-relay/domain"
	"chat-relay/mocks"
	"chat-relay/protocol"
)

// fakePeer records envelopes instead of writing to a socket.
type fakePeer struct {
	contact domain.Contact
	sendErr error

	mu      sync.Mutex
	sent    []protocol.Envelope
	stopped bool
}

func newFakePeer(address, alias string) *fakePeer {
	contact := domain.NewContact(address)
	contact.Alias = alias
	return &fakePeer{contact: contact}
}

func (p *fakePeer) Contact() domain.Contact { return p.contact }

func (p *fakePeer) Send(env protocol.Envelope) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sendErr != nil {
		return p.sendErr
	}
	p.sent = append(p.sent, env)
	return nil
}

func (p *fakePeer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
}

func (p *fakePeer) received() []protocol.Envelope {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]protocol.Envelope, len(p.sent))
	copy(out, p.sent)
	return out
}

func TestRegistry_Register_Broadcasts_Presence(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)

	ana := newFakePeer("10.0.0.5", "Ana")
	bob := newFakePeer("10.0.0.6", "Bob")

	sink.EXPECT().OnPeerConnected(ana.contact, gomock.Any()).Times(1)
	sink.EXPECT().OnPeerConnected(bob.contact, gomock.Any()).Times(1)

	registry := NewRegistry(sink, slog.Default())
	registry.Register(ana)
	registry.Register(bob)

	// Ana saw both pushes, Bob only the second.
	req.Len(ana.received(), 2)
	req.Len(bob.received(), 1)

	last := bob.received()[0]
	req.Equal(protocol.CmdListConnectedContacts, last.Command)
	live, err := protocol.UnmarshalPayload[[]domain.Contact](last.Payload)
	req.NoError(err)
	req.Len(live, 2)
	req.Equal("Ana", live[0].Alias)
	req.Equal("Bob", live[1].Alias)

	req.Len(registry.Snapshot(), 2)
}

func TestRegistry_Unregister_Is_Duplicate_Safe(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)

	ana := newFakePeer("10.0.0.5", "Ana")
	bob := newFakePeer("10.0.0.6", "Bob")

	sink.EXPECT().OnPeerConnected(gomock.Any(), gomock.Any()).Times(2)
	sink.EXPECT().OnPeerDisconnected(ana.contact, gomock.Any()).Times(1)

	registry := NewRegistry(sink, slog.Default())
	registry.Register(ana)
	registry.Register(bob)

	registry.Unregister(ana)
	// A second unregistration of the same peer is a no-op.
	registry.Unregister(ana)

	req.Len(registry.Snapshot(), 1)
	req.Equal("Bob", registry.Snapshot()[0].Alias)

	// Bob saw the departure push: 2 registrations + 1 unregistration.
	req.Len(bob.received(), 3)
	live, err := protocol.UnmarshalPayload[[]domain.Contact](bob.received()[2].Payload)
	req.NoError(err)
	req.Len(live, 1)
}

func TestRegistry_DeliverTo_Matches_Alias_And_Address(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)
	sink.EXPECT().OnPeerConnected(gomock.Any(), gomock.Any()).AnyTimes()
	sink.EXPECT().OnLog(gomock.Any()).AnyTimes()

	ana := newFakePeer("10.0.0.5", "Ana")
	bob := newFakePeer("10.0.0.6", "Bob")

	registry := NewRegistry(sink, slog.Default())
	registry.Register(ana)
	registry.Register(bob)
	anaBaseline := len(ana.received())
	bobBaseline := len(bob.received())

	env, err := protocol.NewEnvelope(protocol.CmdNewMessage, "x")
	req.NoError(err)

	req.Equal(1, registry.DeliverTo("Ana", env))
	req.Equal(1, registry.DeliverTo("10.0.0.5", env))
	req.Equal(0, registry.DeliverTo("ghost", env))

	req.Len(ana.received(), anaBaseline+2)
	req.Len(bob.received(), bobBaseline)
}

func TestRegistry_DeliverTo_Counts_Only_Successful_Sends(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)
	sink.EXPECT().OnPeerConnected(gomock.Any(), gomock.Any()).AnyTimes()
	sink.EXPECT().OnLog(gomock.Any()).AnyTimes()

	broken := newFakePeer("10.0.0.7", "Zoe")
	broken.sendErr = fmt.Errorf("connection reset")

	registry := NewRegistry(sink, slog.Default())
	registry.Register(broken)

	env, err := protocol.NewEnvelope(protocol.CmdNewMessage, "x")
	req.NoError(err)
	req.Equal(0, registry.DeliverTo("Zoe", env))
}

func TestRegistry_StopAll_Stops_Every_Peer(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)
	sink.EXPECT().OnPeerConnected(gomock.Any(), gomock.Any()).AnyTimes()

	ana := newFakePeer("10.0.0.5", "Ana")
	bob := newFakePeer("10.0.0.6", "Bob")

	registry := NewRegistry(sink, slog.Default())
	registry.Register(ana)
	registry.Register(bob)
	registry.StopAll()

	req.True(ana.stopped)
	req.True(bob.stopped)
}
