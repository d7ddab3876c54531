package pipeline

import "sync"

// Sink consumes progress events. Implementations must be safe for
// concurrent use; the driver reports from several workers.
type Sink interface {
	OnEvent(Event)
}

// Nop drops every event.
var Nop Sink = nopSink{}

type nopSink struct{}

func (nopSink) OnEvent(Event) {}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// FuncSink adapts a function.
type FuncSink func(Event)

func (f FuncSink) OnEvent(evt Event) {
	if f != nil {
		f(evt)
	}
}

// Recorder keeps every event in arrival order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) OnEvent(evt Event) {
	r.mu.Lock()
	r.events = append(r.events, evt)
	r.mu.Unlock()
}

// Events returns a copy of what has been recorded.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Final returns the last terminal status per file.
func (r *Recorder) Final() map[string]Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]Status)
	for _, ev := range r.events {
		if ev.File != "" && ev.Status.Terminal() {
			out[ev.File] = ev.Status
		}
	}
	return out
}

// Emit is OnEvent tolerant of a nil sink.
func Emit(s Sink, evt Event) {
	if s == nil {
		return
	}
	s.OnEvent(evt)
}

// Queue reports every file as queued.
func Queue(s Sink, files []string) {
	for _, f := range files {
		Emit(s, Event{File: f, Stage: StageRead, Status: StatusQueued})
	}
}
