// Package inbox carries control messages from producers (keyboard,
// terminal, tests) into the single-threaded effects loop.
package inbox

import (
	"sync/atomic"

	"lumen/proto"
)

// MaxMessageBytes is the maximum payload size for a message.
const MaxMessageBytes = 128

// Message is a fixed-size message envelope.
type Message struct {
	Kind proto.Kind
	Len  uint16
	Data [MaxMessageBytes]byte
}

// NewMessage builds a message, returning false if payload does not fit.
func NewMessage(kind proto.Kind, payload []byte) (Message, bool) {
	var msg Message
	if len(payload) > MaxMessageBytes {
		return msg, false
	}
	msg.Kind = kind
	msg.Len = uint16(copy(msg.Data[:], payload))
	return msg, true
}

// Payload returns the used part of Data.
func (m *Message) Payload() []byte { return m.Data[:m.Len] }

const mailboxSlots = 8

// Mailbox is a fixed-size multi-producer, single-consumer queue.
// It does not allocate and busy-waits with Gosched().
type Mailbox struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	ready [mailboxSlots]atomic.Bool
	slots [mailboxSlots]Message
}

// TrySend attempts to enqueue a message, returning false if the mailbox is full.
func (mb *Mailbox) TrySend(msg Message) bool {
	for {
		head := mb.head.Load()
		tail := mb.tail.Load()
		if head-tail >= mailboxSlots {
			return false
		}
		if mb.head.CompareAndSwap(head, head+1) {
			mb.slots[head%mailboxSlots] = msg
			mb.ready[head%mailboxSlots].Store(true)
			return true
		}
	}
}

// TryRecv attempts to dequeue one message, returning false if empty or if
// the oldest reserved slot has not been written yet.
func (mb *Mailbox) TryRecv() (Message, bool) {
	tail := mb.tail.Load()
	idx := tail % mailboxSlots
	if !mb.ready[idx].Load() {
		return Message{}, false
	}
	msg := mb.slots[idx]
	mb.ready[idx].Store(false)
	mb.tail.Store(tail + 1)
	return msg, true
}

// Post builds and enqueues a message without blocking.
func (mb *Mailbox) Post(kind proto.Kind, payload []byte) bool {
	msg, ok := NewMessage(kind, payload)
	if !ok {
		return false
	}
	return mb.TrySend(msg)
}

// Drain hands every queued message to fn and returns how many were handled.
func (mb *Mailbox) Drain(fn func(Message)) int {
	n := 0
	for {
		msg, ok := mb.TryRecv()
		if !ok {
			return n
		}
		fn(msg)
		n++
	}
}
