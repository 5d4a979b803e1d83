package relay

import (
	"bufio"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-relay/client"
	"chat-relay/domain"
	"chat-relay/mocks"
	"chat-relay/protocol"
	"chat-relay/repositories"
)

// capturedEvents records the client-side callbacks of one peer.
type capturedEvents struct {
	mu        sync.Mutex
	summaries [][]domain.ConversationSummary
	history   []domain.Conversation
	messages  []domain.Message
	presence  [][]domain.Contact
}

func (e *capturedEvents) OnConversationSummaries(summaries []domain.ConversationSummary) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.summaries = append(e.summaries, summaries)
}

func (e *capturedEvents) OnConversationHistory(conversation domain.Conversation) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.history = append(e.history, conversation)
}

func (e *capturedEvents) OnMessageArrived(message domain.Message) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.messages = append(e.messages, message)
}

func (e *capturedEvents) OnConnectedContacts(contacts []domain.Contact) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.presence = append(e.presence, contacts)
}

func (e *capturedEvents) lastPresenceCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.presence) == 0 {
		return -1
	}
	return len(e.presence[len(e.presence)-1])
}

func (e *capturedEvents) lastPresenceHas(alias string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.presence) == 0 {
		return false
	}
	for _, contact := range e.presence[len(e.presence)-1] {
		if contact.Alias == alias {
			return true
		}
	}
	return false
}

func (e *capturedEvents) lastSummaries() []domain.ConversationSummary {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.summaries) == 0 {
		return nil
	}
	return e.summaries[len(e.summaries)-1]
}

func (e *capturedEvents) firstMessage() (domain.Message, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.messages) == 0 {
		return domain.Message{}, false
	}
	return e.messages[0], true
}

func (e *capturedEvents) lastHistory() (domain.Conversation, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.history) == 0 {
		return domain.Conversation{}, false
	}
	return e.history[len(e.history)-1], true
}

func startRelay(t *testing.T) (*Listener, *recordingSink, string) {
	t.Helper()
	req := require.New(t)
	db := openRelayStore(t)

	contacts, err := repositories.NewContactRepository(db, slog.Default())
	req.NoError(err)
	conversations := repositories.NewConversationRepository(db, slog.Default())
	sink := &recordingSink{}
	registry := NewRegistry(sink, slog.Default())
	listener := NewListener(contacts, conversations, registry, sink, slog.Default())

	req.True(listener.Start(0))
	t.Cleanup(listener.Stop)
	req.NotNil(listener.Addr())
	return listener, sink, listener.Addr().String()
}

func Test_Listener_Refuses_Double_Start(t *testing.T) {
	req := require.New(t)
	listener, sink, _ := startRelay(t)

	req.False(listener.Start(0))
	req.True(sink.logged("already running"))

	listener.Stop()
	req.Equal(1, sink.stops)
	// A second stop stays silent.
	listener.Stop()
	req.Equal(1, sink.stops)
}

func Test_Listener_Stop_Without_Start_Is_Safe(t *testing.T) {
	req := require.New(t)
	db := openRelayStore(t)

	contacts, err := repositories.NewContactRepository(db, slog.Default())
	req.NoError(err)
	conversations := repositories.NewConversationRepository(db, slog.Default())
	sink := &recordingSink{}
	registry := NewRegistry(sink, slog.Default())
	listener := NewListener(contacts, conversations, registry, sink, slog.Default())

	listener.Stop()
	req.Equal(0, sink.stops)
	req.Nil(listener.Addr())
}

func Test_Listener_Survives_Panicking_Session(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	contacts := mocks.NewMockIContactRepository(ctrl)
	contacts.EXPECT().GetOrCreate(gomock.Any()).DoAndReturn(func(address string) (domain.Contact, error) {
		return domain.NewContact(address), nil
	}).AnyTimes()

	conversations := mocks.NewMockIConversationRepository(ctrl)
	conversations.EXPECT().SummariesFor(gomock.Any()).DoAndReturn(func(domain.Contact) ([]domain.ConversationSummary, error) {
		panic("summary explosion")
	})
	conversations.EXPECT().Get("conv-1").Return(domain.NewConversation("conv-1"), nil)

	sink := &recordingSink{}
	registry := NewRegistry(sink, slog.Default())
	listener := NewListener(contacts, conversations, registry, sink, slog.Default())
	req.True(listener.Start(0))
	t.Cleanup(listener.Stop)

	first, err := net.Dial("tcp", listener.Addr().String())
	req.NoError(err)
	defer first.Close()
	firstReader := bufio.NewReader(first)
	readEnvelope(t, firstReader) // presence push on registration

	// The worker panics inside command handling: its session is stopped
	// and unregistered, the process stays up.
	writeCommand(t, first, protocol.CmdListConversations, "")
	req.Eventually(func() bool {
		return sink.logged("panicked")
	}, 2*time.Second, 10*time.Millisecond)
	_, err = firstReader.ReadString('\n')
	req.Error(err)
	req.Eventually(func() bool {
		return len(registry.Snapshot()) == 0
	}, 2*time.Second, 10*time.Millisecond)

	// A fresh connection is still served.
	second, err := net.Dial("tcp", listener.Addr().String())
	req.NoError(err)
	defer second.Close()
	secondReader := bufio.NewReader(second)
	readEnvelope(t, secondReader) // presence push on registration

	writeCommand(t, second, protocol.CmdConversationHistory, "conv-1")
	response := readEnvelope(t, secondReader)
	req.Equal(protocol.CmdConversationHistoryResp, response.Command)
}

func Test_Relay_End_To_End(t *testing.T) {
	req := require.New(t)
	_, _, addr := startRelay(t)

	anaEvents := &capturedEvents{}
	ana := client.New(addr, anaEvents, slog.Default())
	_, err := ana.Connect()
	req.NoError(err)
	defer ana.Close()
	req.NoError(ana.Login("Ana"))

	bobEvents := &capturedEvents{}
	bob := client.New(addr, bobEvents, slog.Default())
	_, err = bob.Connect()
	req.NoError(err)
	defer bob.Close()
	req.NoError(bob.Login("Bob"))

	// Both peers see a presence list naming both aliases; that also
	// guarantees both logins were processed before any delivery.
	req.Eventually(func() bool {
		return anaEvents.lastPresenceHas("Ana") && anaEvents.lastPresenceHas("Bob") &&
			bobEvents.lastPresenceHas("Bob")
	}, 2*time.Second, 10*time.Millisecond)

	// Ana's message is stored, acknowledged and pushed to Bob.
	req.NoError(ana.SendMessage(domain.NewMessage("conv-e2e", "Ana", "Bob", domain.KindText, "hola")))
	req.Eventually(func() bool {
		message, ok := bobEvents.firstMessage()
		return ok && message.Content == "hola" && message.Sender == "Ana"
	}, 2*time.Second, 10*time.Millisecond)

	// Ana's conversation list previews the message she just sent.
	req.NoError(ana.RequestSummaries())
	req.Eventually(func() bool {
		summaries := anaEvents.lastSummaries()
		return len(summaries) == 1 &&
			summaries[0].ConversationID == "conv-e2e" &&
			summaries[0].PreviewText == "hola" &&
			summaries[0].PeerAlias == "Bob"
	}, 2*time.Second, 10*time.Millisecond)

	// Full history on demand.
	req.NoError(ana.RequestHistory("conv-e2e"))
	req.Eventually(func() bool {
		conversation, ok := anaEvents.lastHistory()
		return ok && conversation.ID == "conv-e2e" && len(conversation.Messages) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Bob leaving shrinks the presence list pushed to Ana.
	bob.Close()
	req.Eventually(func() bool {
		return anaEvents.lastPresenceCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
}
