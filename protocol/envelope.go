// Package protocol implements the line-oriented wire format of the relay.
// Every exchange is one JSON envelope per newline-terminated UTF-8 line.
package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"

	relayerrors "chat-relay/errors"
)

// Command tags the purpose of an envelope.
type Command string

const (
	CmdLogin                     Command = "LOGIN"
	CmdListConversations         Command = "LIST_CONVERSATIONS"
	CmdListConversationsResponse Command = "LIST_CONVERSATIONS_RESPONSE"
	CmdConversationHistory       Command = "CONVERSATION_HISTORY"
	CmdConversationHistoryResp   Command = "CONVERSATION_HISTORY_RESPONSE"
	CmdNewMessage                Command = "NEW_MESSAGE"
	CmdListConnectedContacts     Command = "LIST_CONNECTED_CONTACTS"
	CmdAck                       Command = "ACK"
	CmdError                     Command = "ERROR"
)

// knownCommands rejects envelopes whose tag no peer would ever produce.
var knownCommands = map[Command]struct{}{
	CmdLogin:                     {},
	CmdListConversations:         {},
	CmdListConversationsResponse: {},
	CmdConversationHistory:       {},
	CmdConversationHistoryResp:   {},
	CmdNewMessage:                {},
	CmdListConnectedContacts:     {},
	CmdAck:                       {},
	CmdError:                     {},
}

// Envelope pairs a command tag with its payload. The payload is itself a
// serialized JSON value carried as a quoted string, not a nested object.
// This one level of extra encoding matches the legacy wire format and is
// kept for compatibility.
type Envelope struct {
	Command Command `json:"command"`
	Payload string  `json:"payload"`
}

// Encode renders the envelope as a single newline-terminated line.
func Encode(env Envelope) ([]byte, error) {
	line, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encoding envelope: %w", err)
	}
	return append(line, '\n'), nil
}

// Decode parses one line into an envelope. A line that is not a JSON
// envelope, or whose command tag is unknown, yields ErrMalformedEnvelope.
// Callers must treat that as non-fatal: skip the line and keep reading.
func Decode(line []byte) (Envelope, error) {
	var env Envelope
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return Envelope{}, fmt.Errorf("%w: empty line", relayerrors.ErrMalformedEnvelope)
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", relayerrors.ErrMalformedEnvelope, err)
	}
	if _, ok := knownCommands[env.Command]; !ok {
		return Envelope{}, fmt.Errorf("%w: unknown command %q", relayerrors.ErrMalformedEnvelope, env.Command)
	}
	return env, nil
}

// MarshalPayload serializes a command-specific value into the payload
// string of an envelope.
func MarshalPayload[T any](value T) (string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encoding payload: %w", err)
	}
	return string(raw), nil
}

// UnmarshalPayload reads a payload string back into a command-specific
// value. An empty payload yields the zero value, mirroring the permissive
// legacy handling of blank fields.
func UnmarshalPayload[T any](payload string) (T, error) {
	var value T
	trimmed := bytes.TrimSpace([]byte(payload))
	if len(trimmed) == 0 {
		return value, nil
	}
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return value, fmt.Errorf("decoding payload: %w", err)
	}
	return value, nil
}

// NewEnvelope builds an envelope from a command and its payload value.
func NewEnvelope[T any](command Command, value T) (Envelope, error) {
	payload, err := MarshalPayload(value)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Command: command, Payload: payload}, nil
}
