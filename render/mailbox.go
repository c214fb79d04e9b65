// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"errors"
	"sync"
)

// ErrMailboxClosed is returned by Take after Close.
var ErrMailboxClosed = errors.New("render: mailbox closed")

// Mailbox is a single-slot, latest-wins frame hand-off. Put never blocks:
// a new frame replaces the previous one, and a replaced frame that was
// never read counts as a drop.
//
// Mailbox is safe for one or more producers and consumers.
type Mailbox struct {
	mu     sync.Mutex
	cond   *sync.Cond
	frame  *PixelBuffer
	seq    uint64
	fresh  bool
	drops  uint64
	closed bool
}

// NewMailbox returns an empty mailbox.
func NewMailbox() *Mailbox {
	m := &Mailbox{}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Put stores frame, replacing any previous one. It reports false when the
// mailbox is closed or frame is nil.
func (m *Mailbox) Put(frame *PixelBuffer) bool {
	if frame == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false
	}
	if m.fresh {
		m.drops++
	}
	m.frame = frame
	m.seq++
	m.fresh = true
	m.cond.Broadcast()
	return true
}

// Latest returns the most recent frame and its sequence number without
// waiting, marking it read. It returns nil before the first Put. The same
// frame is returned again until a newer one arrives.
func (m *Mailbox) Latest() (*PixelBuffer, uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fresh = false
	return m.frame, m.seq
}

// Take blocks until a frame newer than the last one read arrives, the
// mailbox is closed, or ctx is done.
func (m *Mailbox) Take(ctx context.Context) (*PixelBuffer, error) {
	stop := context.AfterFunc(ctx, func() {
		m.mu.Lock()
		m.cond.Broadcast()
		m.mu.Unlock()
	})
	defer stop()

	m.mu.Lock()
	defer m.mu.Unlock()
	for !m.fresh && !m.closed && ctx.Err() == nil {
		m.cond.Wait()
	}
	switch {
	case m.fresh:
		m.fresh = false
		return m.frame, nil
	case m.closed:
		return nil, ErrMailboxClosed
	default:
		return nil, ctx.Err()
	}
}

// Drops returns how many frames were replaced before being read.
func (m *Mailbox) Drops() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.drops
}

// Close releases the held frame and wakes blocked readers. It is safe to
// call more than once.
func (m *Mailbox) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	m.frame = nil
	m.fresh = false
	m.cond.Broadcast()
}

// Closed reports whether Close was called.
func (m *Mailbox) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
