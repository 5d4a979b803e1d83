package relay

import (
	"fmt"
	"log/slog"
	"net"
	"sync"

	"chat-relay/contract"
)

// Listener binds the relay port and turns every accepted connection into
// a registered session with its own worker goroutine.
type Listener struct {
	contacts      contract.IContactRepository
	conversations contract.IConversationRepository
	registry      contract.IRegistry
	sink          contract.EventSink
	log           *slog.Logger

	mu     sync.Mutex
	ln     net.Listener
	active bool
}

func NewListener(
	contacts contract.IContactRepository,
	conversations contract.IConversationRepository,
	registry contract.IRegistry,
	sink contract.EventSink,
	log *slog.Logger,
) *Listener {
	return &Listener{
		contacts:      contacts,
		conversations: conversations,
		registry:      registry,
		sink:          sink,
		log:           log,
	}
}

// Start binds the port and launches the accept loop. It returns false,
// with the reason logged, when the listener is already running or the
// bind fails.
func (l *Listener) Start(port int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.active {
		l.sink.OnLog(fmt.Sprintf("relay already running on port %d", port))
		return false
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		l.sink.OnLog(fmt.Sprintf("binding port %d: %v", port, err))
		return false
	}

	l.ln = ln
	l.active = true
	go l.acceptLoop(ln)

	l.sink.OnServerStarted(port)
	return true
}

func (l *Listener) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if l.isActive() {
				l.sink.OnLog(fmt.Sprintf("accepting connection: %v", err))
			}
			return
		}
		l.admit(conn)
	}
}

// admit materializes the contact for the remote address, registers a new
// session and starts its worker. A panicking session worker is recovered
// and its session stopped; one broken connection must never take the
// process down.
func (l *Listener) admit(conn net.Conn) {
	address := remoteIP(conn)
	contact, err := l.contacts.GetOrCreate(address)
	if err != nil {
		// The in-memory record is still valid; only the durable copy is
		// stale. Keep serving the connection.
		l.sink.OnLog(fmt.Sprintf("persisting contact for %s: %v", address, err))
	}

	session := NewSession(conn, contact, l.registry, l.contacts, l.conversations, l.log)
	l.registry.Register(session)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				l.sink.OnLog(fmt.Sprintf("session %s panicked: %v", contact.Describe(), rec))
				session.Stop()
			}
		}()
		session.Run()
	}()
}

// Stop marks the listener inactive, closes the bound socket to unblock
// the accept loop and force-stops every live session. Safe to call even
// if Start never succeeded.
func (l *Listener) Stop() {
	l.mu.Lock()
	wasActive := l.active
	l.active = false
	ln := l.ln
	l.ln = nil
	l.mu.Unlock()

	if ln != nil {
		_ = ln.Close()
	}
	l.registry.StopAll()

	if wasActive {
		l.sink.OnServerStopped()
	}
}

// Addr reports the bound address, or nil while the listener is down.
// Useful when starting on port 0 and letting the OS pick.
func (l *Listener) Addr() net.Addr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ln == nil {
		return nil
	}
	return l.ln.Addr()
}

func (l *Listener) isActive() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// remoteIP strips the ephemeral port; contact identity tracks the host
// address only, as the legacy store did.
func remoteIP(conn net.Conn) string {
	host, _, err := net.SplitHostPort(conn.RemoteAddr().String())
	if err != nil {
		return conn.RemoteAddr().String()
	}
	return host
}
