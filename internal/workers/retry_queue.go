package workers

import (
	"container/list"
	"sync"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// RetryQueue is a FIFO of sync work holding at most one item per key.
//
// Thread-safety: all methods are safe for concurrent use.
type RetryQueue struct {
	mu    sync.Mutex
	items *list.List
	index map[string]*list.Element
}

func NewRetryQueue() *RetryQueue {
	return &RetryQueue{
		items: list.New(),
		index: make(map[string]*list.Element),
	}
}

// Enqueue appends key, or resets the retry state of the item already queued
// for it without moving it. Reports whether a new item was added.
func (q *RetryQueue) Enqueue(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if el, ok := q.index[key]; ok {
		el.Value = models.QueueItem{Key: key}
		return false
	}

	q.index[key] = q.items.PushBack(models.QueueItem{Key: key})
	return true
}

// PopFront removes and returns the oldest item.
func (q *RetryQueue) PopFront() (models.QueueItem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	el := q.items.Front()
	if el == nil {
		return models.QueueItem{}, false
	}

	item := q.items.Remove(el).(models.QueueItem)
	delete(q.index, item.Key)
	return item, true
}

// Requeue puts a previously popped item at the back. If the key was
// enqueued again in the meantime the fresh item wins and Requeue reports
// false.
func (q *RetryQueue) Requeue(item models.QueueItem) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.index[item.Key]; ok {
		return false
	}

	q.index[item.Key] = q.items.PushBack(item)
	return true
}

func (q *RetryQueue) Contains(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	_, ok := q.index[key]
	return ok
}

// Remove drops the item for key. Reports whether there was one.
func (q *RetryQueue) Remove(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	el, ok := q.index[key]
	if !ok {
		return false
	}

	q.items.Remove(el)
	delete(q.index, key)
	return true
}

func (q *RetryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.items.Len()
}

// Keys returns the queued keys front to back.
func (q *RetryQueue) Keys() []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	keys := make([]string, 0, q.items.Len())
	for el := q.items.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(models.QueueItem).Key)
	}
	return keys
}
