package scheduler

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/saaga0h/nightshift/pkg/mqtt"
)

// Control carries requests from signal handlers and remote commands to the
// run loop. Toggle is consumed when read, exit stays set until cleared.
type Control struct {
	toggle atomic.Bool
	exit   atomic.Bool
	wake   chan struct{}
}

// NewControl creates a control with no pending requests
func NewControl() *Control {
	return &Control{wake: make(chan struct{}, 1)}
}

// Toggle requests the adjustment to be switched on or off
func (c *Control) Toggle() {
	c.toggle.Store(true)
	c.notify()
}

// TakeToggle reports and clears a pending toggle request
func (c *Control) TakeToggle() bool {
	return c.toggle.Swap(false)
}

// Exit requests shutdown
func (c *Control) Exit() {
	c.exit.Store(true)
	c.notify()
}

// Exiting reports whether an exit request is pending
func (c *Control) Exiting() bool {
	return c.exit.Load()
}

// ClearExit drops the pending exit request so a second one can be told apart
func (c *Control) ClearExit() {
	c.exit.Store(false)
}

// Wake is signalled whenever a request arrives
func (c *Control) Wake() <-chan struct{} {
	return c.wake
}

func (c *Control) notify() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// NotifySignals routes SIGUSR1 to Toggle and SIGINT/SIGTERM to Exit until ctx ends
func NotifySignals(ctx context.Context, ctrl *Control, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	sigChan := make(chan os.Signal, 4)
	signal.Notify(sigChan, syscall.SIGUSR1, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		for {
			select {
			case sig := <-sigChan:
				logger.Info("Received signal", "signal", sig.String())
				if sig == syscall.SIGUSR1 {
					ctrl.Toggle()
				} else {
					ctrl.Exit()
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// SubscribeControl accepts "toggle" and "exit" commands on the control topic of service
func SubscribeControl(client mqtt.Client, service string, ctrl *Control, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	topic := mqtt.ControlTopic(service)
	return client.Subscribe(topic, 1, func(msg mqtt.Message) {
		// Retained commands are stale
		if msg.Retained() {
			return
		}

		switch cmd := strings.ToLower(strings.TrimSpace(string(msg.Payload()))); cmd {
		case "toggle":
			ctrl.Toggle()
		case "exit":
			ctrl.Exit()
		default:
			logger.Warn("Unknown control command", "topic", msg.Topic(), "command", cmd)
			return
		}
		logger.Info("Received control command", "topic", msg.Topic(), "command", string(msg.Payload()))
	})
}
