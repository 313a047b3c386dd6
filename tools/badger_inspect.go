package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	pb "chat-relay/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/proto"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	// Default scans all message partitions; narrow with e.g. "msg:group:team-42:"
	prefix := flag.String("prefix", "msg:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Partition", "Seq", "Time", "Sender", "Content"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()

			// Account keys share the store, skip anything not message-shaped
			if !strings.HasPrefix(string(item.Key()), "msg:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				var p pb.Message
				if err := proto.Unmarshal(v, &p); err != nil {
					// Log the error and keep scanning instead of stopping the whole dump
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}

				partition := fmt.Sprintf("%s:%s", p.ChatType, p.TargetId)
				if p.ChatType == "group" {
					partition = color.New(color.FgCyan).Render(partition)
				}

				content := p.Content
				if len(content) > 48 {
					content = content[:48] + "…"
				}

				// Show only the first 8 chars of the sender id for readability
				sender := p.Sender
				if len(sender) > 8 {
					sender = sender[:8]
				}

				table.Append([]string{
					partition,
					fmt.Sprintf("%d", p.Sequence),
					time.Unix(0, p.At).UTC().Format("15:04:05"),
					sender,
					content,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		// If corruption is detected, try a write open to allow truncate
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}

			// Close and reopen read-only
			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
