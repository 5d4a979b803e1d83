package internal

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/dgraph-io/badger/v4"

	"chat-relay/domain"
)

//go:embed inspect.html
var templatesFS embed.FS

// InspectRow is one store record rendered on the inspect page.
type InspectRow struct {
	Key      string
	Peer     string
	Messages int
	Preview  string
}

type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// StartDebugServer serves a read-only view of the conversation records
// for operators. Listens on all interfaces so it is reachable from the
// LAN the relay serves.
func StartDebugServer(db *badger.DB, port int, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "conv:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, conversationRow(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}

func conversationRow(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:     key,
		Peer:    "-",
		Preview: "size: " + strconv.Itoa(len(val)) + " bytes",
	}

	var conversation domain.Conversation
	if err := json.Unmarshal(val, &conversation); err != nil {
		return row
	}
	row.Messages = len(conversation.Messages)
	if last, ok := conversation.LastMessage(); ok {
		row.Peer = last.Sender
		row.Preview = last.Content
	}
	return row
}
