// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

/*
Package cache provides bounded in-memory data structures.

# Deduplication

Deduper remembers keys for a fixed window and answers whether a key was
already seen. It backs webhook redelivery detection: bundle.social retries
a delivery whose acknowledgement it did not receive, and the relay should
not fan the same event out to browsers twice.

	d := cache.NewDeduper(10000, 10*time.Minute)
	if d.Seen(signature) {
	    // acknowledge without republishing
	}

Entries live in a doubly linked list ordered by last use plus a map for
lookups, so Seen and eviction are O(1). When the deduper is full
the least recently seen key is evicted, even if it has not expired.
Expired entries are removed lazily on access or by Prune.

# Thread Safety

All methods are safe for concurrent use.
*/
package cache
