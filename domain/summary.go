package domain

import "time"

// ConversationSummary is a derived digest of a conversation's newest
// message, used for list views. It is never persisted.
type ConversationSummary struct {
	ConversationID string    `json:"conversationId"`
	PeerAlias      string    `json:"peerAlias"`
	PeerAddress    string    `json:"peerAddress"`
	PreviewText    string    `json:"previewText"`
	PreviewSentAt  time.Time `json:"previewTimestamp"`
}

// Summarize builds the summary of a conversation from its last message.
// An empty conversation yields a summary with an empty preview.
func Summarize(c Conversation) ConversationSummary {
	summary := ConversationSummary{
		ConversationID: c.ID,
		PeerAlias:      c.PeerAlias,
		PeerAddress:    c.PeerAddress,
	}
	if last, ok := c.LastMessage(); ok {
		summary.PreviewText = last.Content
		summary.PreviewSentAt = last.SentAt
	}
	return summary
}

// SummarizeFor builds the summary as seen by one participant: the peer is
// the other party of the newest message. Conversations recorded with
// explicit peer metadata keep it.
func SummarizeFor(c Conversation, viewer Contact) ConversationSummary {
	summary := Summarize(c)
	last, ok := c.LastMessage()
	if !ok {
		return summary
	}
	if summary.PeerAlias == "" {
		peer := last.Sender
		if viewer.Matches(last.Sender) {
			peer = last.Recipient
		}
		summary.PeerAlias = peer
	}
	return summary
}
