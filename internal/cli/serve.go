package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/protoviz/breadboard/pkg/board"
	boardio "github.com/protoviz/breadboard/pkg/io"
	"github.com/protoviz/breadboard/pkg/render/diagram"
	"github.com/protoviz/breadboard/pkg/render/diagram/geom"
	"github.com/protoviz/breadboard/pkg/render/diagram/sink"
	"github.com/protoviz/breadboard/pkg/render/netlist"
)

// serveCommand creates the serve command for the live preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, metricsPath string

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a live HTML preview of a layout file",
		Long: `Serve starts a local HTTP server that renders the layout file on every
request, so edits to the file show up on refresh. Endpoints:

  /             HTML preview page
  /board.svg    bare board SVG
  /netlist.svg  netlist connectivity graph`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, args[0], addr, metricsPath)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&metricsPath, "metrics", "", "TOML file overriding the drawing metrics")

	return cmd
}

// previewServer renders a layout file on demand. The file is re-read per
// request; there is no watcher and no caching, staleness is impossible.
type previewServer struct {
	logger  *log.Logger
	input   string
	metrics geom.Metrics
}

func (c *CLI) runServe(cmd *cobra.Command, input, addr, metricsPath string) error {
	m, err := loadMetrics(metricsPath)
	if err != nil {
		return err
	}

	// Fail fast on an unreadable or invalid layout before binding the port.
	doc, err := boardio.ImportJSON(input)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	s := &previewServer{logger: c.Logger, input: input, metrics: m}

	r := chi.NewRouter()
	r.Use(s.requestLog)
	r.Get("/", s.handleIndex)
	r.Get("/board.svg", s.handleBoardSVG)
	r.Get("/netlist.svg", s.handleNetlistSVG)

	printSuccess("Serving %s", input)
	printLink("http://" + addr)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-cmd.Context().Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requestLog tags every request with a short render ID so concurrent
// renders can be told apart in the logs. The tagged logger travels in the
// request context for the handlers to pick up.
func (s *previewServer) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()[:8]
		l := s.logger.With("render", id)
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), l)))
		l.Infof("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}

// load re-reads the layout document from disk.
func (s *previewServer) load() (board.Document, error) {
	return boardio.ImportJSON(s.input)
}

func (s *previewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc, err := s.load()
	if err != nil {
		fail(w, r, err)
		return
	}
	d, err := diagram.Build(doc, s.metrics)
	if err != nil {
		fail(w, r, err)
		return
	}
	page, err := sink.RenderHTML(d, doc)
	if err != nil {
		fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *previewServer) handleBoardSVG(w http.ResponseWriter, r *http.Request) {
	doc, err := s.load()
	if err != nil {
		fail(w, r, err)
		return
	}
	d, err := diagram.Build(doc, s.metrics)
	if err != nil {
		fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(sink.RenderSVG(d))
}

func (s *previewServer) handleNetlistSVG(w http.ResponseWriter, r *http.Request) {
	doc, err := s.load()
	if err != nil {
		fail(w, r, err)
		return
	}
	dot, err := netlist.ToDOT(doc, netlist.Options{Detailed: true})
	if err != nil {
		fail(w, r, err)
		return
	}
	svg, err := netlist.RenderSVG(dot)
	if err != nil {
		fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

// fail reports a render failure to both the client and the log. Layout
// errors are the user's to fix, so they are returned as 422 with the
// message in the body rather than a bare 500.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	loggerFromContext(r.Context()).Errorf("Render failed: %v", err)
	status := http.StatusInternalServerError
	if errors.Is(err, board.ErrInvalidPad) || errors.Is(err, board.ErrInvalidBoard) {
		status = http.StatusUnprocessableEntity
	}
	http.Error(w, err.Error(), status)
}
