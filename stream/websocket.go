package stream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"nhooyr.io/websocket"
)

// Websocket connect/subscribe/backoff/heartbeat tuning.
const (
	dialTimeout       = 5 * time.Second
	subscribeTimeout  = 5 * time.Second
	heartbeatTimeout  = 10 * time.Second
	heartbeatInterval = 30 * time.Second
	backoffMultiplier = 5
	backoffMax        = 30
)

// WebSocketSource connects to a websocket endpoint that yields raw NMEA
// text frames. Each text frame is treated as one NMEA line; any
// connection-time handshake (API key, bounding box, subscription
// filters) is delegated to an optional payload sent once after connect,
// making it usable against any websocket NMEA feed rather than one
// fixed provider's schema.
type WebSocketSource struct {
	url       string
	subscribe []byte // optional payload sent once after connect, nil to skip
	conn      *websocket.Conn

	lines chan []byte
	errs  chan error
	quit  chan struct{}
	done  chan struct{}
}

// NewWebSocketSource returns a Source that streams NMEA lines from a
// websocket endpoint. subscribe, if non-nil, is sent as a single text
// frame immediately after connecting (e.g. an API key + bounding box
// payload).
func NewWebSocketSource(url string, subscribe []byte) *WebSocketSource {
	ws := &WebSocketSource{
		url:       url,
		subscribe: subscribe,
		lines:     make(chan []byte, 64),
		errs:      make(chan error, 1),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	go ws.run()
	return ws
}

func (ws *WebSocketSource) connect() error {
	hc := &http.Client{Timeout: dialTimeout}
	c, _, err := websocket.Dial(context.Background(), ws.url, &websocket.DialOptions{HTTPClient: hc})
	if err != nil {
		return fmt.Errorf("could not connect to websocket: %w", err)
	}
	ws.conn = c

	if ws.subscribe != nil {
		ctx, cancel := context.WithTimeout(context.Background(), subscribeTimeout)
		defer cancel()
		if err := ws.conn.Write(ctx, websocket.MessageText, ws.subscribe); err != nil {
			ws.conn.Close(websocket.StatusNormalClosure, "")
			return fmt.Errorf("failed to write subscribe payload: %w", err)
		}
	}
	return nil
}

func (ws *WebSocketSource) heartbeat(quit <-chan struct{}) {
	for {
		select {
		case <-quit:
			return
		default:
		}
		ctx, cancel := context.WithTimeout(context.Background(), heartbeatTimeout)
		err := ws.conn.Ping(ctx)
		cancel()
		if err != nil {
			return
		}
		select {
		case <-quit:
			return
		case <-time.After(heartbeatInterval):
		}
	}
}

func (ws *WebSocketSource) run() {
	backoffCount := 0

connect:
	for {
		select {
		case <-ws.quit:
			ws.done <- struct{}{}
			return
		default:
		}

		if err := ws.connect(); err != nil {
			backoffCount = ws.backoff(backoffCount)
			continue connect
		}

		hbQuit := make(chan struct{})
		go ws.heartbeat(hbQuit)

		for {
			select {
			case <-ws.quit:
				close(hbQuit)
				ws.conn.Close(websocket.StatusNormalClosure, "")
				ws.done <- struct{}{}
				return
			default:
				_, b, err := ws.conn.Read(context.Background())
				if err != nil {
					close(hbQuit)
					ws.conn.Close(websocket.StatusNormalClosure, "")
					backoffCount = ws.backoff(backoffCount)
					continue connect
				}
				backoffCount = 0
				ws.lines <- b
			}
		}
	}
}

func (ws *WebSocketSource) backoff(count int) int {
	sleep := backoffMultiplier * count
	if sleep > backoffMax {
		sleep = backoffMax
	}
	time.Sleep(time.Duration(sleep) * time.Second)
	return count + 1
}

// Next returns the next raw line received from the websocket.
func (ws *WebSocketSource) Next() ([]byte, error) {
	select {
	case line := <-ws.lines:
		return line, nil
	case err := <-ws.errs:
		return nil, err
	}
}

// Close signals the connection loop to stop and waits for it to exit.
func (ws *WebSocketSource) Close() error {
	close(ws.quit)
	<-ws.done
	return nil
}
