package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Conversation_Append_Preserves_Order(t *testing.T) {
	req := require.New(t)

	conversation := NewConversation("conv-1")
	_, ok := conversation.LastMessage()
	req.False(ok)

	first := NewMessage("conv-1", "Ana", "Bob", KindText, "hola")
	second := NewMessage("conv-1", "Bob", "Ana", KindText, "hey")
	conversation.Append(first)
	conversation.Append(second)

	req.Len(conversation.Messages, 2)
	last, ok := conversation.LastMessage()
	req.True(ok)
	req.Equal("hey", last.Content)
}

func Test_Conversation_Involves_By_Alias_Or_Address(t *testing.T) {
	req := require.New(t)

	ana := NewContact("10.0.0.5")
	ana.Alias = "Ana"

	conversation := NewConversation("conv-1")
	conversation.Append(NewMessage("conv-1", "Ana", "Bob", KindText, "hola"))

	req.True(conversation.Involves(ana))

	byAddress := NewConversation("conv-2")
	byAddress.Append(NewMessage("conv-2", "Clara", "10.0.0.5", KindText, "ping"))
	req.True(byAddress.Involves(ana))

	stranger := NewConversation("conv-3")
	stranger.Append(NewMessage("conv-3", "Clara", "Bob", KindText, "private"))
	req.False(stranger.Involves(ana))

	req.False(NewConversation("empty").Involves(ana))
}

func Test_Summarize_Uses_Last_Message_As_Preview(t *testing.T) {
	req := require.New(t)

	conversation := NewConversation("conv-1")
	summary := Summarize(conversation)
	req.Equal("conv-1", summary.ConversationID)
	req.Empty(summary.PreviewText)
	req.True(summary.PreviewSentAt.IsZero())

	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	conversation.Append(Message{ConversationID: "conv-1", Sender: "Ana", Recipient: "Bob", Kind: KindText, Content: "hola", SentAt: at})
	conversation.Append(Message{ConversationID: "conv-1", Sender: "Bob", Recipient: "Ana", Kind: KindText, Content: "hey", SentAt: at.Add(time.Minute)})

	summary = Summarize(conversation)
	req.Equal("hey", summary.PreviewText)
	req.True(summary.PreviewSentAt.Equal(at.Add(time.Minute)))
}

func Test_Summarize_For_Names_The_Other_Party(t *testing.T) {
	req := require.New(t)

	ana := NewContact("10.0.0.5")
	ana.Alias = "Ana"

	conversation := NewConversation("conv-1")
	conversation.Append(NewMessage("conv-1", "Ana", "Bob", KindText, "hola"))

	// Viewer sent the last message, so the peer is the recipient.
	summary := SummarizeFor(conversation, ana)
	req.Equal("Bob", summary.PeerAlias)

	conversation.Append(NewMessage("conv-1", "Bob", "Ana", KindText, "hey"))
	summary = SummarizeFor(conversation, ana)
	req.Equal("Bob", summary.PeerAlias)

	// Explicit peer metadata wins over derivation.
	conversation.PeerAlias = "Roberto"
	summary = SummarizeFor(conversation, ana)
	req.Equal("Roberto", summary.PeerAlias)
}
