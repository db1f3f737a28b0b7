package cli

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/lucentlab/lucent/pkg/region"
	"github.com/lucentlab/lucent/pkg/worker"
)

// upgrader accepts any origin: the bridge serves local design tooling, not
// the public internet.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func newServeCmd(a *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the region tracer over WebSocket",
		Long: `Serve exposes the region tracer on a WebSocket endpoint speaking the
worker protocol: JSON requests {id, reference, hue, axes, options} in,
JSON responses {id, paths} or {id, paths: [], error} out. Each connection
gets its own tracer, so one slow client never stalls another.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen == "" {
				listen = a.cfg.Listen
			}

			mux := http.NewServeMux()
			mux.HandleFunc("/trace", a.handleTrace)

			a.log.Info("listening", "addr", listen)
			return http.ListenAndServe(listen, mux)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "bind address (default from config)")

	return cmd
}

// handleTrace upgrades the connection and bridges it to a dedicated
// tracer. Reads decode into trace requests; responses stream back as they
// complete, so results may interleave ahead of later requests.
func (a *app) handleTrace(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.log.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	tr := worker.NewTracer(worker.WithLogger(a.log.Named("tracer")))

	a.log.Debug("client connected", "remote", conn.RemoteAddr())

	// The websocket package allows a single writer, so one goroutine owns
	// every write. It keeps draining after a write failure so producers
	// never block on a dead connection.
	outbound := make(chan worker.Response, 16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		failed := false
		for resp := range outbound {
			if failed {
				continue
			}
			if err := conn.WriteJSON(resp); err != nil {
				a.log.Debug("write failed", "error", err)
				failed = true
			}
		}
	}()

	forwarderDone := make(chan struct{})
	go func() {
		defer close(forwarderDone)
		for resp := range tr.Responses() {
			outbound <- resp
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				a.log.Warn("connection closed unexpectedly", "error", err)
			}
			break
		}

		var req worker.Request
		if err := json.Unmarshal(data, &req); err != nil {
			// Echo the id when the envelope is well-formed enough to
			// carry one, so the client can correlate the failure.
			var probe struct {
				ID int `json:"id"`
			}
			_ = json.Unmarshal(data, &probe)
			outbound <- worker.Response{ID: probe.ID, Paths: []region.Path{}, Error: err.Error()}
			continue
		}

		if err := tr.Submit(req); err != nil {
			outbound <- worker.Response{ID: req.ID, Paths: []region.Path{}, Error: err.Error()}
		}
	}

	// Close the tracer first so the forwarder drains and exits, then
	// retire the outbound channel once both senders are done.
	tr.Close()
	<-forwarderDone
	close(outbound)
	<-writerDone

	a.log.Debug("client disconnected", "remote", conn.RemoteAddr())
}
