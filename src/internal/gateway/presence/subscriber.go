package presence

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"storefront-service/src/pkg/log"
)

const (
	defaultMaxReconnects    = 5
	defaultReconnectBackoff = 3 * time.Second
)

type countFrame struct {
	Count int `json:"count"`
}

// Subscriber holds one persistent connection to the realtime presence
// provider and exposes the latest pushed viewer count. On transport loss it
// retries a bounded number of times with a fixed backoff, then stays
// disconnected until restarted.
type Subscriber struct {
	url              string
	maxReconnects    int
	reconnectBackoff time.Duration
	log              log.Log

	mu        sync.RWMutex
	count     int
	connected bool

	stopChan chan struct{}
	doneChan chan struct{}
}

func NewSubscriber(url string, maxReconnects int, backoff time.Duration, logger log.Log) *Subscriber {
	if maxReconnects <= 0 {
		maxReconnects = defaultMaxReconnects
	}
	if backoff <= 0 {
		backoff = defaultReconnectBackoff
	}
	return &Subscriber{
		url:              url,
		maxReconnects:    maxReconnects,
		reconnectBackoff: backoff,
		log:              logger,
		stopChan:         make(chan struct{}),
		doneChan:         make(chan struct{}),
	}
}

// Start launches the subscription loop in the background.
func (s *Subscriber) Start(ctx context.Context) {
	go s.run(ctx)
}

// Stop closes the subscription and waits for the loop to exit.
func (s *Subscriber) Stop() {
	close(s.stopChan)
	<-s.doneChan
}

// Snapshot returns the latest pushed count and the connectivity flag.
func (s *Subscriber) Snapshot() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count, s.connected
}

func (s *Subscriber) run(ctx context.Context) {
	defer close(s.doneChan)

	attempts := 0
	for attempts <= s.maxReconnects {
		if s.stopped(ctx) {
			return
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url, nil)
		if err != nil {
			attempts++
			s.log.Error("presence-subscriber", err.Error(), "dial", s.url)
			if !s.wait(ctx) {
				return
			}
			continue
		}

		s.setConnected(true)
		attempts = 0
		s.log.Info("presence-subscriber", "connected to presence feed", "dial", s.url)

		err = s.readLoop(ctx, conn)
		_ = conn.Close()
		s.setConnected(false)
		if err == nil {
			// Stop requested.
			return
		}

		attempts++
		s.log.Error("presence-subscriber", err.Error(), "read", s.url)
		if !s.wait(ctx) {
			return
		}
	}

	s.log.Error("presence-subscriber", "reconnect attempts exhausted", "run", s.url)
}

// readLoop returns nil on a requested stop and the transport error
// otherwise.
func (s *Subscriber) readLoop(ctx context.Context, conn *websocket.Conn) error {
	frames := make(chan []byte)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case frames <- data:
			case <-done:
				// readLoop already returned; do not strand this reader.
				return
			}
		}
	}()

	for {
		select {
		case <-s.stopChan:
			return nil
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return err
		case data := <-frames:
			var frame countFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				s.log.Error("presence-subscriber", err.Error(), "decode", string(data))
				continue
			}
			s.mu.Lock()
			s.count = frame.Count
			s.mu.Unlock()
		}
	}
}

func (s *Subscriber) setConnected(connected bool) {
	s.mu.Lock()
	s.connected = connected
	s.mu.Unlock()
}

func (s *Subscriber) stopped(ctx context.Context) bool {
	select {
	case <-s.stopChan:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func (s *Subscriber) wait(ctx context.Context) bool {
	select {
	case <-time.After(s.reconnectBackoff):
		return true
	case <-s.stopChan:
		return false
	case <-ctx.Done():
		return false
	}
}
