package relay

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	"chat-relay/contract"
	"chat-relay/domain"
	relayerrors "chat-relay/errors"
	"chat-relay/protocol"
)

// Session owns one live client connection. It runs a blocking read loop,
// dispatches decoded envelopes and writes responses. A session is created
// on accept, destroyed on disconnect and never migrates between
// connections.
type Session struct {
	conn          net.Conn
	registry      contract.IRegistry
	contacts      contract.IContactRepository
	conversations contract.IConversationRepository
	log           *slog.Logger

	mu      sync.Mutex // guards contact
	contact domain.Contact

	writeMu  sync.Mutex
	live     atomic.Bool
	stopOnce sync.Once
}

func NewSession(
	conn net.Conn,
	contact domain.Contact,
	registry contract.IRegistry,
	contacts contract.IContactRepository,
	conversations contract.IConversationRepository,
	log *slog.Logger,
) *Session {
	s := &Session{
		conn:          conn,
		contact:       contact,
		registry:      registry,
		contacts:      contacts,
		conversations: conversations,
		log:           log,
	}
	s.live.Store(true)
	return s
}

// Contact returns the current identity of this session's peer.
func (s *Session) Contact() domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contact
}

func (s *Session) setAlias(alias string) domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contact.Alias = alias
	return s.contact
}

// Run is the read loop. It blocks on one line at a time and exits on EOF,
// I/O error or Stop. A malformed line never terminates the connection.
func (s *Session) Run() {
	defer s.Stop()

	reader := bufio.NewReader(s.conn)
	for s.live.Load() {
		line, err := reader.ReadString('\n')
		// A final line may arrive without its newline right before EOF;
		// it is still a complete envelope and must be processed.
		if len(line) > 0 {
			env, decodeErr := protocol.Decode([]byte(line))
			if decodeErr != nil {
				s.registry.Log(fmt.Sprintf("skipping bad line from %s: %v", s.Contact().Describe(), decodeErr))
			} else {
				s.dispatch(env)
			}
		}
		if err != nil {
			if err != io.EOF && s.live.Load() {
				s.registry.Log(fmt.Sprintf("session %s read error: %v", s.Contact().Describe(), err))
			}
			return
		}
	}
}

func (s *Session) dispatch(env protocol.Envelope) {
	switch env.Command {
	case protocol.CmdLogin:
		s.handleLogin(env.Payload)
	case protocol.CmdListConversations:
		s.handleListConversations()
	case protocol.CmdConversationHistory:
		s.handleConversationHistory(env.Payload)
	case protocol.CmdNewMessage:
		s.handleNewMessage(env.Payload)
	case protocol.CmdListConnectedContacts:
		s.handleListConnectedContacts()
	default:
		s.registry.Log(fmt.Sprintf("command %s not supported on the relay, ignoring", env.Command))
	}
}

// handleLogin stores the self-reported alias and triggers a presence
// broadcast. A blank alias is accepted and stored as the empty string.
func (s *Session) handleLogin(payload string) {
	alias, err := protocol.UnmarshalPayload[string](payload)
	if err != nil {
		s.registry.Log(fmt.Sprintf("invalid LOGIN payload: %v", err))
		return
	}
	contact := s.setAlias(alias)

	if err := s.contacts.Save(contact); err != nil {
		// In-memory state stays authoritative; the durable copy is stale
		// until the next successful write.
		s.registry.Log(fmt.Sprintf("persisting contact %s: %v", contact.Describe(), err))
	}
	s.registry.Log(fmt.Sprintf("LOGIN -> %s", contact.Describe()))
	s.registry.BroadcastPresence()
}

func (s *Session) handleListConversations() {
	summaries, err := s.conversations.SummariesFor(s.Contact())
	if err != nil {
		s.replyError(fmt.Sprintf("listing conversations: %v", err))
		return
	}
	s.reply(protocol.CmdListConversationsResponse, summaries)
}

func (s *Session) handleConversationHistory(payload string) {
	conversationID, err := protocol.UnmarshalPayload[string](payload)
	if err != nil {
		s.registry.Log(fmt.Sprintf("invalid CONVERSATION_HISTORY payload: %v", err))
		return
	}
	conversation, err := s.conversations.Get(conversationID)
	if err != nil {
		s.replyError(fmt.Sprintf("loading conversation %q: %v", conversationID, err))
		return
	}
	s.reply(protocol.CmdConversationHistoryResp, conversation)
}

// handleNewMessage appends the message, acknowledges the sender and
// pushes the message to the recipient's live sessions. The append runs
// before any reply so log order equals arrival order.
func (s *Session) handleNewMessage(payload string) {
	message, err := protocol.UnmarshalPayload[domain.Message](payload)
	if err != nil {
		s.registry.Log(fmt.Sprintf("invalid NEW_MESSAGE payload: %v", err))
		return
	}

	if err := s.conversations.AppendMessage(message); err != nil {
		s.replyError(fmt.Sprintf("storing message in %q: %v", message.ConversationID, err))
		return
	}

	s.reply(protocol.CmdAck, "ok")

	env, err := protocol.NewEnvelope(protocol.CmdNewMessage, message)
	if err != nil {
		s.registry.Log(fmt.Sprintf("encoding message push: %v", err))
		return
	}
	if delivered := s.registry.DeliverTo(message.Recipient, env); delivered == 0 {
		s.registry.Log(fmt.Sprintf("recipient %q offline, message stored only", message.Recipient))
	}
}

func (s *Session) handleListConnectedContacts() {
	s.reply(protocol.CmdListConnectedContacts, s.registry.Snapshot())
}

func (s *Session) reply(command protocol.Command, value any) {
	env, err := protocol.NewEnvelope(command, value)
	if err != nil {
		s.registry.Log(fmt.Sprintf("encoding %s reply: %v", command, err))
		return
	}
	if err := s.Send(env); err != nil {
		s.registry.Log(fmt.Sprintf("sending %s to %s: %v", command, s.Contact().Describe(), err))
	}
}

func (s *Session) replyError(text string) {
	s.registry.Log(text)
	s.reply(protocol.CmdError, text)
}

// Send serializes the envelope and writes one line. The write mutex keeps
// a registry broadcast and a read-loop reply from interleaving partial
// lines on the same connection.
func (s *Session) Send(env protocol.Envelope) error {
	if !s.live.Load() {
		return relayerrors.ErrSessionClosed
	}
	line, err := protocol.Encode(env)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if _, err := s.conn.Write(line); err != nil {
		return fmt.Errorf("writing envelope: %w", err)
	}
	return nil
}

// Stop is idempotent. It clears the live flag, closes the transport (the
// only way to unblock a pending read) and unregisters exactly once, no
// matter how many triggers race.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		s.live.Store(false)
		_ = s.conn.Close()
		s.registry.Unregister(s)
	})
}
