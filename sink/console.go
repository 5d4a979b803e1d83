package sink

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"chat-relay/domain"
)

// ConsoleSink renders relay events for an operator terminal: coloured
// lifecycle lines plus a presence table on every membership change. It is
// the headless replacement for the legacy server window.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

func (s *ConsoleSink) OnServerStarted(port int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, color.New(color.FgGreen).Render(fmt.Sprintf("relay listening on port %d", port)))
}

func (s *ConsoleSink) OnServerStopped() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, color.New(color.FgYellow).Render("relay stopped"))
}

func (s *ConsoleSink) OnPeerConnected(contact domain.Contact, live []domain.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, color.New(color.FgGreen).Render("+ "+contact.Describe()))
	s.renderPresence(live)
}

func (s *ConsoleSink) OnPeerDisconnected(contact domain.Contact, live []domain.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, color.New(color.FgRed).Render("- "+contact.Describe()))
	s.renderPresence(live)
}

func (s *ConsoleSink) OnLog(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "%s %s\n", time.Now().Format("15:04:05"), text)
}

func (s *ConsoleSink) renderPresence(live []domain.Contact) {
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Alias", "Address", "ID"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, contact := range live {
		table.Append([]string{contact.Alias, contact.LastKnownAddress, contact.ID.String()})
	}
	table.Render()
}
