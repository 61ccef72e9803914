// seehuhn.de/go/pptx - a library for reading and writing PowerPoint files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pptx

// lruCache is an LRU cache for decompressed part payloads.  Part sizes
// range from a few hundred bytes for a slide to megabytes for embedded
// media, so eviction is bounded by total payload size rather than by
// entry count.  Payloads larger than the size bound are not cached.
type lruCache struct {
	maxSize     int64
	size        int64
	entries     map[string]*cacheEntry
	first, last *cacheEntry
}

type cacheEntry struct {
	prev, next *cacheEntry
	key        string
	data       []byte
}

// newCache creates a new LRU cache holding up to maxSize bytes of part
// payloads.
func newCache(maxSize int64) *lruCache {
	return &lruCache{
		maxSize: maxSize,
		entries: make(map[string]*cacheEntry),
	}
}

// Put adds a part payload to the cache, evicting the least recently
// used payloads if the size bound is exceeded.
func (l *lruCache) Put(key string, data []byte) {
	if ent, ok := l.entries[key]; ok {
		l.unlink(ent)
		delete(l.entries, key)
		l.size -= int64(len(ent.data))
	}
	if int64(len(data)) > l.maxSize {
		return
	}

	ent := &cacheEntry{
		key:  key,
		data: data,
	}
	l.entries[key] = ent
	l.size += int64(len(data))
	l.pushFront(ent)

	for l.size > l.maxSize {
		l.removeLast()
	}
}

// Get returns a part payload from the cache and marks it as recently used.
func (l *lruCache) Get(key string) ([]byte, bool) {
	ent, ok := l.entries[key]
	if !ok {
		return nil, false
	}

	l.unlink(ent)
	l.pushFront(ent)
	return ent.data, true
}

// Has returns true if the cache contains the given key.
// The entry is not marked as recently used.
func (l *lruCache) Has(key string) bool {
	_, ok := l.entries[key]
	return ok
}

func (l *lruCache) pushFront(ent *cacheEntry) {
	ent.next = l.first
	if l.first != nil {
		l.first.prev = ent
	}
	l.first = ent
	if l.last == nil {
		l.last = ent
	}
}

func (l *lruCache) unlink(ent *cacheEntry) {
	if ent.prev != nil {
		ent.prev.next = ent.next
	} else {
		l.first = ent.next
	}
	if ent.next != nil {
		ent.next.prev = ent.prev
	} else {
		l.last = ent.prev
	}
	ent.prev = nil
	ent.next = nil
}

func (l *lruCache) removeLast() {
	ent := l.last
	if ent == nil {
		return
	}

	l.unlink(ent)
	delete(l.entries, ent.key)
	l.size -= int64(len(ent.data))
}
