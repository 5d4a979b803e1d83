package domain

import "github.com/samber/lo"

// Conversation is an append-only ordered log of messages between two
// parties. Message order equals the order the relay observed them in;
// there is no external clock reconciliation.
type Conversation struct {
	ID          string    `json:"id"`
	PeerAddress string    `json:"peerAddress"`
	PeerAlias   string    `json:"peerAlias"`
	Messages    []Message `json:"messages"`
}

func NewConversation(id string) Conversation {
	return Conversation{ID: id}
}

// Append adds a message to the log. The message keeps whatever
// conversation id it was created with; all messages of a stored
// conversation share the conversation's id.
func (c *Conversation) Append(message Message) {
	c.Messages = append(c.Messages, message)
}

// LastMessage returns the newest message of the log, if any.
func (c Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// Involves reports whether the contact appears as sender or recipient of
// at least one message.
func (c Conversation) Involves(contact Contact) bool {
	return lo.SomeBy(c.Messages, func(m Message) bool {
		return contact.Matches(m.Sender) || contact.Matches(m.Recipient)
	})
}
