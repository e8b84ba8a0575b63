// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package cache

import (
	"sync"
	"time"
)

const (
	defaultCapacity = 10000
	defaultWindow   = 10 * time.Minute
)

type entry struct {
	key       string
	expiresAt time.Time
	prev      *entry
	next      *entry
}

// Deduper is a capacity bounded set of recently seen keys.
type Deduper struct {
	mu sync.Mutex

	capacity int
	window   time.Duration
	now      func() time.Time

	items map[string]*entry

	// head.next is the most recently seen key, tail.prev the least.
	head *entry
	tail *entry
}

// NewDeduper creates a deduper holding at most capacity keys for window
// each. Non-positive arguments fall back to 10000 keys and ten minutes.
func NewDeduper(capacity int, window time.Duration) *Deduper {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if window <= 0 {
		window = defaultWindow
	}

	d := &Deduper{
		capacity: capacity,
		window:   window,
		now:      time.Now,
		items:    make(map[string]*entry),
		head:     &entry{},
		tail:     &entry{},
	}
	d.head.next = d.tail
	d.tail.prev = d.head
	return d
}

// Seen reports whether key was recorded within the window. An unseen or
// expired key is recorded and false is returned. A seen key keeps its
// original expiry so a steady stream of retries cannot pin it forever.
func (d *Deduper) Seen(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if e, ok := d.items[key]; ok {
		if now.Before(e.expiresAt) {
			d.unlink(e)
			d.pushFront(e)
			return true
		}
		d.remove(e)
	}

	e := &entry{key: key, expiresAt: now.Add(d.window)}
	d.pushFront(e)
	d.items[key] = e
	for len(d.items) > d.capacity {
		d.remove(d.tail.prev)
	}

	return false
}

// Prune removes expired keys and returns how many were removed.
func (d *Deduper) Prune() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	removed := 0
	for e := d.tail.prev; e != d.head; {
		prev := e.prev
		if !now.Before(e.expiresAt) {
			d.remove(e)
			removed++
		}
		e = prev
	}
	return removed
}

// Len returns the number of recorded keys, expired ones included until
// they are pruned.
func (d *Deduper) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.items)
}

// List helpers; callers hold mu.

func (d *Deduper) pushFront(e *entry) {
	e.prev = d.head
	e.next = d.head.next
	d.head.next.prev = e
	d.head.next = e
}

func (d *Deduper) unlink(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (d *Deduper) remove(e *entry) {
	if e == d.head {
		return
	}
	d.unlink(e)
	delete(d.items, e.key)
}
