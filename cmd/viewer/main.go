package main

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"chat-relay/domain"
	"chat-relay/internal"
)

// The viewer browses the relay store without touching the wire: it opens
// badger read-only and prints one row per conversation record.
func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in read-only mode.
	// BypassLockGuard allows opening while the relay holds the lock.
	opts := badger.DefaultOptions(config.StorageFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer db.Close()

	color.New(color.FgGreen).Println("chat-relay store — conversations")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Conversation", "Messages", "Last sender", "Preview", "At"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("conv:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var conversation domain.Conversation
				if err := json.Unmarshal(v, &conversation); err != nil {
					// Keep scanning; one broken record should not hide the rest.
					color.New(color.FgRed).Printf("unreadable record %s: %v\n", it.Item().Key(), err)
					return nil
				}
				row := []string{conversation.ID, strconv.Itoa(len(conversation.Messages)), "-", "-", "-"}
				if last, ok := conversation.LastMessage(); ok {
					row[2] = last.Sender
					row[3] = last.Content
					row[4] = last.SentAt.Format("2006-01-02 15:04:05")
				}
				table.Append(row)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to scan store: %v", err)
	}

	table.Render()
}
