package testutil

import "sync"

// FakeConnectivity is a hand-driven connectivity source. Tests flip it with
// SetOnline, which notifies subscribers synchronously on a transition.
type FakeConnectivity struct {
	mu     sync.Mutex
	online bool
	subs   map[int]func(bool)
	nextID int
}

func NewFakeConnectivity(online bool) *FakeConnectivity {
	return &FakeConnectivity{online: online, subs: make(map[int]func(bool))}
}

func (c *FakeConnectivity) IsOnline() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.online
}

func (c *FakeConnectivity) OnConnectivityChanged(fn func(online bool)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// Subscribers returns the number of live subscriptions.
func (c *FakeConnectivity) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// SetOnline changes the state and, if it actually changed, calls every
// subscriber.
func (c *FakeConnectivity) SetOnline(online bool) {
	c.mu.Lock()
	if c.online == online {
		c.mu.Unlock()
		return
	}
	c.online = online
	fns := make([]func(bool), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(online)
	}
}
