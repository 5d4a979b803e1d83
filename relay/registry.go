// Package relay implements the server side of the chat protocol: the
// listener accepting connections, one session per connection, and the
// registry of live sessions.
package relay

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/protocol"
)

// Registry is the mutable set of live peers. A single mutex guards
// membership; sends happen outside the critical section against a copied
// peer list so a slow connection cannot block registration.
type Registry struct {
	sink contract.EventSink
	log  *slog.Logger

	mu    sync.Mutex
	peers []contract.Peer
}

func NewRegistry(sink contract.EventSink, log *slog.Logger) *Registry {
	return &Registry{sink: sink, log: log}
}

// Register adds the peer to the live set, notifies the sink and pushes
// the updated presence list to every live peer, the new one included.
func (r *Registry) Register(peer contract.Peer) {
	r.mu.Lock()
	r.peers = append(r.peers, peer)
	peers, live := r.snapshotLocked()
	r.mu.Unlock()

	r.sink.OnPeerConnected(peer.Contact(), live)
	r.broadcast(peers, live)
}

// Unregister removes the peer and re-broadcasts presence to the rest.
// Unknown peers are ignored, so a duplicate unregistration is harmless.
func (r *Registry) Unregister(peer contract.Peer) {
	r.mu.Lock()
	before := len(r.peers)
	r.peers = lo.Filter(r.peers, func(p contract.Peer, _ int) bool {
		return p != peer
	})
	removed := len(r.peers) != before
	peers, live := r.snapshotLocked()
	r.mu.Unlock()

	if !removed {
		return
	}
	r.sink.OnPeerDisconnected(peer.Contact(), live)
	r.broadcast(peers, live)
}

// BroadcastPresence pushes the current presence list to every live peer.
func (r *Registry) BroadcastPresence() {
	r.mu.Lock()
	peers, live := r.snapshotLocked()
	r.mu.Unlock()
	r.broadcast(peers, live)
}

// DeliverTo sends the envelope to every live peer the party name
// designates and reports how many were reached.
func (r *Registry) DeliverTo(party string, env protocol.Envelope) int {
	r.mu.Lock()
	targets := lo.Filter(r.peers, func(p contract.Peer, _ int) bool {
		return p.Contact().Matches(party)
	})
	r.mu.Unlock()

	delivered := 0
	for _, peer := range targets {
		if err := peer.Send(env); err != nil {
			r.Log(fmt.Sprintf("delivery to %s failed: %v", peer.Contact().Describe(), err))
			continue
		}
		delivered++
	}
	return delivered
}

// Snapshot returns the contacts of all live peers, in connection order.
func (r *Registry) Snapshot() []domain.Contact {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, live := r.snapshotLocked()
	return live
}

// Log forwards a free-text diagnostic to the event sink.
func (r *Registry) Log(text string) {
	r.sink.OnLog(text)
}

// StopAll force-stops every live session. Used on server shutdown.
func (r *Registry) StopAll() {
	r.mu.Lock()
	peers := make([]contract.Peer, len(r.peers))
	copy(peers, r.peers)
	r.mu.Unlock()

	for _, peer := range peers {
		peer.Stop()
	}
}

func (r *Registry) snapshotLocked() ([]contract.Peer, []domain.Contact) {
	peers := make([]contract.Peer, len(r.peers))
	copy(peers, r.peers)
	live := lo.Map(peers, func(p contract.Peer, _ int) domain.Contact {
		return p.Contact()
	})
	return peers, live
}

func (r *Registry) broadcast(peers []contract.Peer, live []domain.Contact) {
	env, err := protocol.NewEnvelope(protocol.CmdListConnectedContacts, live)
	if err != nil {
		r.log.Error("encoding presence list", "error", err)
		return
	}
	for _, peer := range peers {
		if err := peer.Send(env); err != nil {
			r.Log(fmt.Sprintf("presence push to %s failed: %v", peer.Contact().Describe(), err))
		}
	}
}
