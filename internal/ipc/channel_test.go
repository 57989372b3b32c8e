package ipc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/webshell/internal/protocol"
)

type recordingSurface struct {
	listening map[protocol.Message]bool
	delivered []protocol.Message
}

func (s *recordingSurface) Deliver(msg protocol.Message) bool {
	if !s.listening[msg] {
		return false
	}
	s.delivered = append(s.delivered, msg)
	return true
}

func listeningOn(msgs ...protocol.Message) *recordingSurface {
	s := &recordingSurface{listening: make(map[protocol.Message]bool)}
	for _, m := range msgs {
		s.listening[m] = true
	}
	return s
}

func TestSendDeliversEachHostMessageOnce(t *testing.T) {
	for _, msg := range protocol.HostMessages() {
		t.Run(string(msg), func(t *testing.T) {
			s := listeningOn(protocol.HostMessages()...)
			ch := NewChannel()
			ch.Attach(s)

			assert.True(t, ch.Send(msg))
			assert.Equal(t, []protocol.Message{msg}, s.delivered)
		})
	}
}

func TestSendWithoutWindowIsDropped(t *testing.T) {
	ch := NewChannel()
	assert.False(t, ch.Attached())
	assert.False(t, ch.Send(protocol.Reload))
}

func TestSendWithoutListenerIsDropped(t *testing.T) {
	s := listeningOn(protocol.GoBack)
	ch := NewChannel()
	ch.Attach(s)

	assert.False(t, ch.Send(protocol.GoForward))
	assert.Empty(t, s.delivered)
}

func TestSendRejectsInboundNames(t *testing.T) {
	s := listeningOn(protocol.WindowClose)
	ch := NewChannel()
	ch.Attach(s)

	assert.False(t, ch.Send(protocol.WindowClose))
	assert.Empty(t, s.delivered)
}

func TestReceiveDispatchesToSingleHandler(t *testing.T) {
	ch := NewChannel()
	ch.Attach(listeningOn())

	calls := make(map[protocol.Message]int)
	for _, msg := range protocol.SurfaceMessages() {
		msg := msg
		ch.Handle(msg, func() { calls[msg]++ })
	}

	for _, msg := range protocol.SurfaceMessages() {
		assert.True(t, ch.Receive(msg))
	}
	for _, msg := range protocol.SurfaceMessages() {
		assert.Equal(t, 1, calls[msg], string(msg))
	}
}

func TestReceiveIgnoresWhenDetachedOrUnhandled(t *testing.T) {
	ch := NewChannel()
	called := false
	ch.Handle(protocol.WindowMinimize, func() { called = true })

	assert.False(t, ch.Receive(protocol.WindowMinimize))
	assert.False(t, called)

	ch.Attach(listeningOn())
	assert.False(t, ch.Receive(protocol.WindowClose))
	assert.False(t, ch.Receive(protocol.Reload))
	assert.False(t, ch.Receive("bogus"))

	ch.Handle(protocol.WindowMinimize, nil)
	assert.False(t, ch.Receive(protocol.WindowMinimize))

	ch.Detach()
	assert.False(t, ch.Attached())
}
