// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMailboxLatestWins(t *testing.T) {
	m := NewMailbox()
	if f, seq := m.Latest(); f != nil || seq != 0 {
		t.Fatalf("empty Latest() = %v, %d", f, seq)
	}

	a := NewPixelBuffer(1, 1, FormatBGRA8)
	b := NewPixelBuffer(1, 1, FormatBGRA8)
	m.Put(a)
	m.Put(b)

	f, seq := m.Latest()
	if f != b || seq != 2 {
		t.Errorf("Latest() = %p, %d; want %p, 2", f, seq, b)
	}
	if m.Drops() != 1 {
		t.Errorf("Drops() = %d, want 1", m.Drops())
	}

	// Reading again returns the same frame without counting a drop.
	if f2, seq2 := m.Latest(); f2 != b || seq2 != 2 {
		t.Errorf("second Latest() = %p, %d", f2, seq2)
	}
	m.Put(a)
	if m.Drops() != 1 {
		t.Errorf("Drops() after read = %d, want 1", m.Drops())
	}
}

func TestMailboxPutNil(t *testing.T) {
	m := NewMailbox()
	if m.Put(nil) {
		t.Error("Put(nil) should be rejected")
	}
}

func TestMailboxTake(t *testing.T) {
	m := NewMailbox()
	frame := NewPixelBuffer(2, 2, FormatRGBA8)

	done := make(chan *PixelBuffer, 1)
	go func() {
		f, _ := m.Take(context.Background())
		done <- f
	}()

	time.Sleep(10 * time.Millisecond)
	m.Put(frame)

	select {
	case got := <-done:
		if got != frame {
			t.Errorf("Take() = %p, want %p", got, frame)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Take did not return after Put")
	}
}

func TestMailboxTakeCancel(t *testing.T) {
	m := NewMailbox()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := m.Take(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Take() err = %v, want DeadlineExceeded", err)
	}
}

func TestMailboxClose(t *testing.T) {
	m := NewMailbox()
	m.Put(NewPixelBuffer(1, 1, FormatBGRA8))

	done := make(chan error, 1)
	m.Latest()
	go func() {
		_, err := m.Take(context.Background())
		done <- err
	}()
	time.Sleep(10 * time.Millisecond)

	m.Close()
	m.Close()

	select {
	case err := <-done:
		if !errors.Is(err, ErrMailboxClosed) {
			t.Errorf("Take() err = %v, want ErrMailboxClosed", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Take did not return after Close")
	}
	if !m.Closed() {
		t.Error("Closed() = false")
	}
	if m.Put(NewPixelBuffer(1, 1, FormatBGRA8)) {
		t.Error("Put after Close should fail")
	}
	if f, _ := m.Latest(); f != nil {
		t.Error("Close should release the frame")
	}
}
