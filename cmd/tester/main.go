package main

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"

	"chat-relay/client"
	"chat-relay/domain"
)

// Config drives the smoke run. TESTER_CLIENTS peers connect, log in,
// message each other in a ring and ask for their summaries.
type Config struct {
	RelayAddr string        `envconfig:"RELAY_ADDR" default:"localhost:5000"`
	Clients   int           `envconfig:"TESTER_CLIENTS" default:"2"`
	Messages  int           `envconfig:"TESTER_MESSAGES" default:"3"`
	Settle    time.Duration `envconfig:"TESTER_SETTLE" default:"2s"`
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"INFO"`
}

// events logs every callback so a human can eyeball the protocol flow.
type events struct {
	log   *slog.Logger
	alias string
}

func (e *events) OnConversationSummaries(summaries []domain.ConversationSummary) {
	e.log.Info("summaries", "client", e.alias, "count", len(summaries))
	for _, s := range summaries {
		e.log.Info("summary", "client", e.alias, "conversation", s.ConversationID, "peer", s.PeerAlias, "preview", s.PreviewText)
	}
}

func (e *events) OnConversationHistory(conversation domain.Conversation) {
	e.log.Info("history", "client", e.alias, "conversation", conversation.ID, "messages", len(conversation.Messages))
}

func (e *events) OnMessageArrived(message domain.Message) {
	e.log.Info("message arrived", "client", e.alias, "from", message.Sender, "content", message.Content)
}

func (e *events) OnConnectedContacts(contacts []domain.Contact) {
	e.log.Info("presence", "client", e.alias, "live", len(contacts))
}

func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(2)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	var wg sync.WaitGroup
	for i := 0; i < config.Clients; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			runPeer(config, log, n)
		}(i)
	}
	wg.Wait()
	log.Info("smoke run finished")
}

func runPeer(config Config, log *slog.Logger, n int) {
	alias := fmt.Sprintf("tester-%d", n)
	peer := fmt.Sprintf("tester-%d", (n+1)%config.Clients)
	conversationID := ringConversationID(n, (n+1)%config.Clients)

	c := client.New(config.RelayAddr, &events{log: log, alias: alias}, log)
	if _, err := c.Connect(); err != nil {
		log.Error("connect failed", "client", alias, "error", err)
		return
	}
	defer c.Close()

	if err := c.Login(alias); err != nil {
		log.Error("login failed", "client", alias, "error", err)
		return
	}

	for i := 0; i < config.Messages; i++ {
		message := domain.NewMessage(
			conversationID,
			alias,
			peer,
			domain.KindText,
			fmt.Sprintf("hello %d from %s", i, alias),
		)
		if err := c.SendMessage(message); err != nil {
			log.Error("send failed", "client", alias, "error", err)
			return
		}
	}

	if err := c.RequestSummaries(); err != nil {
		log.Error("summaries request failed", "client", alias, "error", err)
	}
	if err := c.RequestConnectedContacts(); err != nil {
		log.Error("presence request failed", "client", alias, "error", err)
	}

	// Leave the connection open long enough to observe pushes.
	time.Sleep(config.Settle)
}

// ringConversationID is stable for a pair regardless of direction.
func ringConversationID(a, b int) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("ring-%d-%d", a, b)
}
