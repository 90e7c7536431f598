package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartblocks/pkg/buildinfo"
	"github.com/matzehuels/chartblocks/pkg/chart"
	errs "github.com/matzehuels/chartblocks/pkg/errors"
	"github.com/matzehuels/chartblocks/pkg/pipeline"
	"github.com/matzehuels/chartblocks/pkg/source"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command, an HTTP preview of every chart in
// the input. The input is re-read on each request, so edits show up on reload.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, sheet string

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Preview the charts of a file over HTTP",
		Long: `Serve the charts of a CSV or XLSX file over HTTP.

Endpoints:
  GET /healthz            liveness probe
  GET /charts             JSON list of the blocks in the file
  GET /charts/<name>.svg  the rendered chart of block <name>`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeInputFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			if addr == "" {
				addr = c.Config.Serve.Addr
			}
			return c.runServe(cmd.Context(), name, sheet, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else 127.0.0.1:8080)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet to read from .xlsx inputs (default: first sheet)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, name, sheet, addr string) error {
	logger := loggerFromContext(ctx)

	src, err := c.openInput(name, sheet)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidFlag, err, "listen on %s", addr)
	}

	srv := &http.Server{
		Handler:           newChartServer(src, logger).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	c.printInfo("Serving %s on %s", src.Name(), StyleValue.Render("http://"+ln.Addr().String()+"/charts"))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errs.Wrap(errs.ErrCodeInternal, err, "serve")
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errs.Wrap(errs.ErrCodeInternal, err, "shutdown")
		}
		return nil
	}
}

// =============================================================================
// Chart Server
// =============================================================================

// chartServer renders the blocks of one source on demand.
type chartServer struct {
	src    source.Source
	logger *log.Logger
}

// chartEntry is one element of the /charts listing.
type chartEntry struct {
	Name   string `json:"name"`
	Mode   string `json:"mode"`
	Series int    `json:"series"`
	URL    string `json:"url"`
}

func newChartServer(src source.Source, logger *log.Logger) *chartServer {
	return &chartServer{src: src, logger: logger}
}

func (s *chartServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Server", buildinfo.UserAgent()))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/charts", s.listCharts)
	r.Get("/charts/{file}", s.chartSVG)
	return r
}

func (s *chartServer) runner() *pipeline.Runner {
	return pipeline.NewRunner(pipeline.WithLogger(s.logger))
}

func (s *chartServer) listCharts(w http.ResponseWriter, r *http.Request) {
	entries := []chartEntry{}
	err := s.runner().Blocks(r.Context(), s.src, func(blk *chart.Block) error {
		entries = append(entries, chartEntry{
			Name:   blk.OutputName,
			Mode:   blk.Mode().String(),
			Series: len(blk.Series),
			URL:    "/charts/" + blk.FileName(),
		})
		return nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		s.logger.Warn("encode chart list", "error", err)
	}
}

// errFound stops the block walk once the requested block was rendered.
var errFound = errors.New("found")

func (s *chartServer) chartSVG(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	name, ok := strings.CutSuffix(file, pipeline.FileExt)
	if !ok {
		http.NotFound(w, r)
		return
	}

	var artifact *pipeline.Artifact
	err := s.runner().Blocks(r.Context(), s.src, func(blk *chart.Block) error {
		if blk.OutputName != name {
			return nil
		}
		a, err := pipeline.Render(blk)
		if err != nil {
			return err
		}
		artifact = a
		return errFound
	})
	if err != nil && !errors.Is(err, errFound) {
		s.fail(w, r, err)
		return
	}
	if artifact == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(artifact.SVG)
}

// fail maps a pipeline error to an HTTP status.
func (s *chartServer) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch errs.GetCode(err) {
	case errs.ErrCodeMalformedInput, errs.ErrCodeDivideByZero:
		status = http.StatusUnprocessableEntity
	case errs.ErrCodeMissingResource:
		status = http.StatusNotFound
	}
	if errors.Is(err, context.Canceled) {
		return
	}
	s.logger.Warn("request failed", "path", r.URL.Path, "status", status, "error", err)
	http.Error(w, errs.UserMessage(err), status)
}

// logRequests logs one line per request through the CLI logger.
func (s *chartServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
