//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"chat-relay/protocol"
)

// EventSink receives relay lifecycle events. Any presentation layer
// (console, log aggregation, a future UI) implements this; the relay core
// never references rendering concerns.
type EventSink interface {
	OnServerStarted(port int)
	OnServerStopped()
	OnPeerConnected(contact domain.Contact, live []domain.Contact)
	OnPeerDisconnected(contact domain.Contact, live []domain.Contact)
	OnLog(text string)
}

// Events receives protocol responses on the client side.
type Events interface {
	OnConversationSummaries(summaries []domain.ConversationSummary)
	OnConversationHistory(conversation domain.Conversation)
	OnMessageArrived(message domain.Message)
	OnConnectedContacts(contacts []domain.Contact)
}

// IContactRepository is the persistent registry mapping connection
// identities to display aliases.
type IContactRepository interface {
	FindByAddress(address string) (domain.Contact, bool)
	GetOrCreate(address string) (domain.Contact, error)
	Save(contact domain.Contact) error
	All() []domain.Contact
}

// IConversationRepository is the persistent append-only conversation log.
type IConversationRepository interface {
	Get(conversationID string) (domain.Conversation, error)
	AppendMessage(message domain.Message) error
	ListAll() ([]domain.Conversation, error)
	SummariesFor(contact domain.Contact) ([]domain.ConversationSummary, error)
}

// Peer is one live connection as the registry sees it.
type Peer interface {
	Contact() domain.Contact
	Send(env protocol.Envelope) error
	Stop()
}

// IRegistry tracks live peers and fans presence changes out to them.
type IRegistry interface {
	Register(peer Peer)
	Unregister(peer Peer)
	BroadcastPresence()
	DeliverTo(party string, env protocol.Envelope) int
	Snapshot() []domain.Contact
	Log(text string)
	StopAll()
}
