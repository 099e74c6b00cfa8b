// Package sync fans committed store changes out to local viewers. It is
// never a source of truth: everything published here has already been
// decided by the store, and consumers reconcile or re-read, nothing more.
package sync

import (
	gosync "sync"

	"numberzz/internal/domain/repository"
)

type Feed struct {
	mu          gosync.RWMutex
	subscribers map[int]func(repository.Change)
	nextID      int
}

func NewFeed() *Feed {
	return &Feed{
		subscribers: make(map[int]func(repository.Change)),
	}
}

func (f *Feed) Publish(change repository.Change) {
	f.mu.RLock()
	handlers := make([]func(repository.Change), 0, len(f.subscribers))
	for _, fn := range f.subscribers {
		handlers = append(handlers, fn)
	}
	f.mu.RUnlock()

	for _, fn := range handlers {
		fn(change)
	}
}

func (f *Feed) Subscribe(fn func(repository.Change)) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subscribers[id] = fn
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.subscribers, id)
		f.mu.Unlock()
	}
}
