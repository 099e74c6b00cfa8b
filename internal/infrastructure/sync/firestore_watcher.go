package sync

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"numberzz/internal/domain/repository"
	"numberzz/pkg/logger"
)

// FirestoreWatcher turns Firestore snapshot listeners into change-feed
// events, one listener per record family. This is the live-update path of
// the shared remote store: viewers on other devices see committed writes
// without polling.
type FirestoreWatcher struct {
	client *firestore.Client
	feed   *Feed
}

func NewFirestoreWatcher(client *firestore.Client, feed *Feed) *FirestoreWatcher {
	return &FirestoreWatcher{
		client: client,
		feed:   feed,
	}
}

// Start spawns one watch goroutine per table. They exit when ctx is done.
func (w *FirestoreWatcher) Start(ctx context.Context) {
	tables := []string{
		repository.TableItems,
		repository.TableSaleContracts,
		repository.TableCertificates,
		repository.TableInterested,
	}
	for _, table := range tables {
		go w.watch(ctx, table)
	}
}

func (w *FirestoreWatcher) watch(ctx context.Context, table string) {
	snapIter := w.client.Collection(table).Snapshots(ctx)
	defer snapIter.Stop()

	for {
		snap, err := snapIter.Next()
		if err == iterator.Done {
			return
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("Snapshot listener for %s failed: %v", table, err)
			return
		}

		for _, change := range snap.Changes {
			kind := repository.ChangeUpdate
			switch change.Kind {
			case firestore.DocumentAdded:
				kind = repository.ChangeInsert
			case firestore.DocumentRemoved:
				kind = repository.ChangeDelete
			}

			var row interface{}
			if change.Kind != firestore.DocumentRemoved {
				row = change.Doc.Data()
			}

			w.feed.Publish(repository.Change{
				Table: table,
				Kind:  kind,
				Key:   change.Doc.Ref.ID,
				Row:   row,
			})
		}
	}
}
