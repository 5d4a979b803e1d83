package domain

import (
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Kind discriminates what a message carries.
type Kind string

const (
	KindText  Kind = "TEXT"
	KindImage Kind = "IMAGE"
	KindFile  Kind = "FILE"
)

// Message is an immutable chat event inside a conversation.
// The timestamp is assigned by the originating side; the relay never
// re-stamps a message on receipt.
type Message struct {
	ConversationID string    `json:"conversationId"`
	Sender         string    `json:"sender"`
	Recipient      string    `json:"recipient"`
	Kind           Kind      `json:"kind"`
	Content        string    `json:"content"`
	SentAt         time.Time `json:"timestamp"`
}

func NewMessage(conversationID, sender, recipient string, kind Kind, content string) Message {
	if kind == "" {
		kind = KindText
	}
	return Message{
		ConversationID: conversationID,
		Sender:         sender,
		Recipient:      recipient,
		Kind:           kind,
		Content:        content,
		SentAt:         time.Now().UTC(),
	}
}

// DetectKind classifies an attachment payload by sniffing its content.
// Anything that is not a recognized image is a generic file.
func DetectKind(data []byte) Kind {
	if len(data) == 0 {
		return KindText
	}
	mime := mimetype.Detect(data)
	if strings.HasPrefix(mime.String(), "image/") {
		return KindImage
	}
	return KindFile
}
