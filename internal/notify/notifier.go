package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironflow/internal/models"
	log "github.com/sirupsen/logrus"
)

// Console prints a banner per detection.
type Console struct {
	out io.Writer
	mu  sync.Mutex
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) NotifyPR(d models.PRDetection) {
	msg, ok := Format(d)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.out, color.New(color.FgYellow, color.Bold).Sprint(msg.Title))
	fmt.Fprintf(c.out, "  %s\n", msg.Body)
}

// Broadcast publishes each detection on a hub so other parts of the
// program can react to it.
type Broadcast struct {
	hub *Hub[models.PRDetection]
	ctx context.Context
}

// NewBroadcast drops detections for subscribers that fall behind.
func NewBroadcast(hub *Hub[models.PRDetection]) *Broadcast {
	return &Broadcast{hub: hub}
}

// NewReliableBroadcast waits for every subscriber to take each detection,
// until ctx is done.
func NewReliableBroadcast(ctx context.Context, hub *Hub[models.PRDetection]) *Broadcast {
	return &Broadcast{hub: hub, ctx: ctx}
}

func (b *Broadcast) NotifyPR(d models.PRDetection) {
	var n int
	if b.ctx != nil {
		n = b.hub.Deliver(b.ctx, d)
	} else {
		n = b.hub.Publish(d)
	}
	if n == 0 {
		log.Debugf("notify: no subscriber received PR for [%s]", d.Exercise)
	}
}

// Multi hands each detection to every notifier in order.
type Multi []interface {
	NotifyPR(models.PRDetection)
}

func (m Multi) NotifyPR(d models.PRDetection) {
	for _, n := range m {
		n.NotifyPR(d)
	}
}

// Summary counts detections received from a hub subscription until Stop is called.
type Summary struct {
	done chan struct{}

	mu        sync.Mutex
	records   int
	exercises map[string]struct{}
}

// Collect starts draining ch in the background.
func Collect(ch <-chan models.PRDetection) *Summary {
	s := &Summary{
		done:      make(chan struct{}),
		exercises: make(map[string]struct{}),
	}
	go func() {
		defer close(s.done)
		for d := range ch {
			s.mu.Lock()
			s.records += len(d.Records)
			s.exercises[d.Exercise] = struct{}{}
			s.mu.Unlock()
		}
	}()
	return s
}

// Wait blocks until the subscription channel is closed, then returns the
// number of records and of distinct exercises seen.
func (s *Summary) Wait() (records, exercises int) {
	<-s.done

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records, len(s.exercises)
}
