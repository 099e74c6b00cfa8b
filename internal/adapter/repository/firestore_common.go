package repository

import (
	"context"
	stderrors "errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"numberzz/pkg/errors"
)

// stderrorsAs unwraps AppErrors raised inside RunTransaction closures so
// precondition reasons survive the transaction boundary untouched.
func stderrorsAs(err error, target **errors.AppError) bool {
	return stderrors.As(err, target)
}

// deleteCollection removes every document of a collection in batches. Only
// the administrative reset path uses this.
func deleteCollection(ctx context.Context, client *firestore.Client, name string) error {
	col := client.Collection(name)

	for {
		iter := col.Limit(100).Documents(ctx)
		deleted := 0

		batch := client.BulkWriter(ctx)
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return errors.Internal("Failed to iterate "+name, err)
			}
			if _, err := batch.Delete(doc.Ref); err != nil {
				return errors.Internal("Failed to queue delete for "+name, err)
			}
			deleted++
		}
		batch.End()

		if deleted == 0 {
			return nil
		}
	}
}
