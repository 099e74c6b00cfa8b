package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numberzz/internal/domain/repository"
)

func TestFeedFanOut(t *testing.T) {
	feed := NewFeed()

	var a, b []repository.Change
	unsubA := feed.Subscribe(func(c repository.Change) { a = append(a, c) })
	defer feed.Subscribe(func(c repository.Change) { b = append(b, c) })()

	feed.Publish(repository.Change{Table: repository.TableItems, Kind: repository.ChangeUpdate, Key: "42"})
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, "42", a[0].Key)

	// unsubscribed handlers stop receiving, others are untouched
	unsubA()
	feed.Publish(repository.Change{Table: repository.TableItems, Kind: repository.ChangeUpdate, Key: "pi"})
	assert.Len(t, a, 1)
	assert.Len(t, b, 2)
}

func TestPublishWithoutSubscribersNeverBlocks(t *testing.T) {
	feed := NewFeed()
	for i := 0; i < 100; i++ {
		feed.Publish(repository.Change{Table: repository.TableCertificates, Kind: repository.ChangeInsert, Key: "x"})
	}
}
