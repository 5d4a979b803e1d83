// Package client implements the relay protocol from the peer side: it
// dials the relay, serializes outbound envelopes and translates inbound
// ones into callbacks on a contract.Events implementation.
package client

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"

	"chat-relay/contract"
	"chat-relay/domain"
	relayerrors "chat-relay/errors"
	"chat-relay/protocol"
)

// Client is one connection to the relay. Writes are serialized with a
// mutex; a dedicated goroutine reads server envelopes and fires the
// event callbacks.
type Client struct {
	address string
	events  contract.Events
	log     *slog.Logger

	mu      sync.Mutex
	conn    net.Conn
	done    chan struct{}
	writeMu sync.Mutex
}

func New(address string, events contract.Events, log *slog.Logger) *Client {
	return &Client{address: address, events: events, log: log}
}

// Connect dials the relay and starts the read loop. The returned channel
// closes when this connection dies, however it dies.
func (c *Client) Connect() (<-chan struct{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return c.done, nil
	}

	conn, err := net.Dial("tcp", c.address)
	if err != nil {
		return nil, fmt.Errorf("dialing relay at %s: %w", c.address, err)
	}

	done := make(chan struct{})
	c.conn = conn
	c.done = done
	go c.readLoop(conn, done)
	return done, nil
}

// Close tears the current connection down. Safe to call repeatedly.
func (c *Client) Close() {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}

// Login announces the display alias. A blank alias is legal; the relay
// stores it as the empty string.
func (c *Client) Login(alias string) error {
	return c.send(protocol.CmdLogin, alias)
}

// SendMessage submits a message for storage and relay delivery. The
// timestamp travels with the message; the relay never re-stamps it.
func (c *Client) SendMessage(message domain.Message) error {
	return c.send(protocol.CmdNewMessage, message)
}

// SendAttachment wraps a raw payload into an IMAGE or FILE message,
// classified by content sniffing, and submits it.
func (c *Client) SendAttachment(conversationID, sender, recipient string, data []byte) error {
	message := domain.NewMessage(
		conversationID,
		sender,
		recipient,
		domain.DetectKind(data),
		base64.StdEncoding.EncodeToString(data),
	)
	return c.SendMessage(message)
}

// RequestSummaries asks for this contact's conversation list. The answer
// arrives through OnConversationSummaries.
func (c *Client) RequestSummaries() error {
	return c.send(protocol.CmdListConversations, "")
}

// RequestHistory asks for the full log of one conversation. The answer
// arrives through OnConversationHistory.
func (c *Client) RequestHistory(conversationID string) error {
	return c.send(protocol.CmdConversationHistory, conversationID)
}

// RequestConnectedContacts asks for the current presence list. The answer
// arrives through OnConnectedContacts.
func (c *Client) RequestConnectedContacts() error {
	return c.send(protocol.CmdListConnectedContacts, "")
}

func (c *Client) send(command protocol.Command, value any) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return relayerrors.ErrNotConnected
	}

	env, err := protocol.NewEnvelope(command, value)
	if err != nil {
		return err
	}
	line, err := protocol.Encode(env)
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if _, err := conn.Write(line); err != nil {
		return fmt.Errorf("writing %s: %w", command, err)
	}
	return nil
}

// readLoop translates relay envelopes into callbacks until the
// connection dies. A malformed line is skipped, never fatal.
func (c *Client) readLoop(conn net.Conn, done chan struct{}) {
	defer close(done)
	defer c.Close()

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadString('\n')
		// A final envelope may arrive without its newline right before
		// the relay closes the connection; deliver it anyway.
		if len(line) > 0 {
			env, decodeErr := protocol.Decode([]byte(line))
			if decodeErr != nil {
				c.log.Warn("skipping bad line from relay", "error", decodeErr)
			} else {
				c.handle(env)
			}
		}
		if err != nil {
			if err != io.EOF {
				c.log.Debug("connection closed", "error", err)
			}
			return
		}
	}
}

func (c *Client) handle(env protocol.Envelope) {
	switch env.Command {
	case protocol.CmdListConversationsResponse:
		summaries, err := protocol.UnmarshalPayload[[]domain.ConversationSummary](env.Payload)
		if err != nil {
			c.log.Warn("bad summaries payload", "error", err)
			return
		}
		c.events.OnConversationSummaries(summaries)

	case protocol.CmdConversationHistoryResp:
		conversation, err := protocol.UnmarshalPayload[domain.Conversation](env.Payload)
		if err != nil {
			c.log.Warn("bad history payload", "error", err)
			return
		}
		c.events.OnConversationHistory(conversation)

	case protocol.CmdNewMessage:
		message, err := protocol.UnmarshalPayload[domain.Message](env.Payload)
		if err != nil {
			c.log.Warn("bad message payload", "error", err)
			return
		}
		c.events.OnMessageArrived(message)

	case protocol.CmdListConnectedContacts:
		contacts, err := protocol.UnmarshalPayload[[]domain.Contact](env.Payload)
		if err != nil {
			c.log.Warn("bad presence payload", "error", err)
			return
		}
		c.events.OnConnectedContacts(contacts)

	case protocol.CmdAck:
		c.log.Debug("relay acknowledged")

	case protocol.CmdError:
		text, err := protocol.UnmarshalPayload[string](env.Payload)
		if err != nil {
			text = env.Payload
		}
		c.log.Warn("relay reported an error", "detail", text)

	default:
		c.log.Warn("unexpected command from relay", "command", string(env.Command))
	}
}
