// Command server exposes the Lauvinko dictionary and sound changes as a JSON
// REST API.
//
// Endpoints:
//
//	GET /api/entries[?category=<category>]
//	GET /api/entry?id=<ident>
//	GET /api/evolve?form=<pk>[&ctx=au|na|pf][&stress=<n>]
//	GET /api/parse?lang=pk|lv&form=<transcription>
//	GET /api/gloss?text=<gloss>
//	GET /metrics
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/lauvinko/lauvinko"
	"github.com/lauvinko/lauvinko/internal/config"
	"github.com/lauvinko/lauvinko/internal/logging"
	"github.com/lauvinko/lauvinko/lv"
	"github.com/lauvinko/lauvinko/pk"
	"github.com/lauvinko/lauvinko/semantics"
)

// ---- JSON response types ------------------------------------------------

type entrySummaryJSON struct {
	Ident    string `json:"ident"`
	Origin   string `json:"origin"`
	Category string `json:"category"`
	Type     string `json:"type"`
}

type formJSON struct {
	Language     string `json:"language"`
	Key          string `json:"key"`
	Historical   string `json:"historical,omitempty"`
	Broad        string `json:"broad"`
	Narrow       string `json:"narrow"`
	Romanization string `json:"romanization"`
	Falavay      string `json:"falavay"`
	Overridden   bool   `json:"overridden,omitempty"`
}

type entryResponse struct {
	entrySummaryJSON
	Definitions map[string]string `json:"definitions"`
	Forms       []formJSON        `json:"forms"`
}

type entriesResponse struct {
	Entries []entrySummaryJSON `json:"entries"`
}

type transcriptionJSON struct {
	Historical   string `json:"historical,omitempty"`
	Broad        string `json:"broad"`
	Narrow       string `json:"narrow"`
	Romanization string `json:"romanization"`
	Falavay      string `json:"falavay,omitempty"`
}

type evolveResponse struct {
	Form    string            `json:"form"`
	Context string            `json:"context"`
	Proto   transcriptionJSON `json:"proto"`
	Result  transcriptionJSON `json:"result"`
}

type parseResponse struct {
	Language string `json:"language"`
	Form     string `json:"form"`
	transcriptionJSON
}

type glossResponse struct {
	Analysis string `json:"analysis"`
	Words    int    `json:"words"`
	transcriptionJSON
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- query parameters ---------------------------------------------------

type entryQuery struct {
	ID string `validate:"required,max=64"`
}

type evolveQuery struct {
	Form   string `validate:"required,max=128"`
	Ctx    string `validate:"omitempty,oneof=au na pf"`
	Stress string `validate:"omitempty,number"`
}

type parseQuery struct {
	Lang string `validate:"required,oneof=pk lv"`
	Form string `validate:"required,max=128"`
}

type glossQuery struct {
	Text string `validate:"required,max=1024"`
}

var validate = validator.New()

// ---- helpers ------------------------------------------------------------

func summarize(e *lauvinko.Entry) entrySummaryJSON {
	return entrySummaryJSON{
		Ident:    e.Ident,
		Origin:   string(e.Origin),
		Category: e.Category.String(),
		Type:     e.Type.String(),
	}
}

func protoTranscription(sf pk.SurfaceForm) transcriptionJSON {
	return transcriptionJSON{
		Broad:        sf.BroadTranscription(),
		Narrow:       sf.NarrowTranscription(),
		Romanization: pk.Romanize(sf, sf.Stressed()),
		Falavay:      pk.Falavay(sf, false),
	}
}

func daughterTranscription(sf lv.SurfaceForm) transcriptionJSON {
	return transcriptionJSON{
		Historical:   sf.HistoricalTranscription(),
		Broad:        sf.BroadTranscription(),
		Narrow:       sf.NarrowTranscription(),
		Romanization: lv.Romanize(sf),
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		requestLogger(r.Context()).Warn("encode error", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}

// writeFailure maps an engine error to its status code.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, lauvinko.ErrUnknownEntry):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, lauvinko.ErrInvalidGloss),
		errors.Is(err, pk.ErrInvalidTranscription),
		errors.Is(err, pk.ErrInvalidSyllable),
		errors.Is(err, pk.ErrInvalidStress),
		errors.Is(err, lv.ErrInvalidTranscription),
		errors.Is(err, lv.ErrInvalidSyllable),
		errors.Is(err, lv.ErrInvalidSurfaceForm),
		errors.Is(err, lv.ErrEvolution):
		writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		requestLogger(r.Context()).Error("request failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, err.Error())
	}
}

// checkQuery validates q and writes a 400 if it fails.
func checkQuery(w http.ResponseWriter, r *http.Request, q any) bool {
	err := validate.Struct(q)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid %q query parameter: %s", fe.Field(), fe.Tag()))
		return false
	}
	writeError(w, r, http.StatusBadRequest, err.Error())
	return false
}

// ---- handlers -----------------------------------------------------------

func handleEntries(d *lauvinko.Dictionary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := d
		if c := r.URL.Query().Get("category"); c != "" {
			category, err := semantics.ParseStemCategory(c)
			if err != nil {
				writeError(w, r, http.StatusBadRequest, err.Error())
				return
			}
			sub = d.Where(func(e *lauvinko.Entry) bool { return e.Category == category })
		}
		out := make([]entrySummaryJSON, 0, sub.Len())
		for _, e := range sub.Entries() {
			out = append(out, summarize(e))
		}
		writeJSON(w, r, http.StatusOK, entriesResponse{Entries: out})
	}
}

func handleEntry(d *lauvinko.Dictionary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := entryQuery{ID: r.URL.Query().Get("id")}
		if !checkQuery(w, r, q) {
			return
		}
		e, err := d.Entry(q.ID)
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		forms, err := e.Paradigm()
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		resp := entryResponse{
			entrySummaryJSON: summarize(e),
			Definitions:      make(map[string]string),
			Forms:            make([]formJSON, 0, len(forms)),
		}
		for _, lang := range e.Languages() {
			resp.Definitions[string(lang)] = e.Definition(lang)
		}
		for _, f := range forms {
			resp.Forms = append(resp.Forms, formJSON{
				Language:     string(f.Language),
				Key:          f.Key(),
				Historical:   f.Historical,
				Broad:        f.Broad,
				Narrow:       f.Narrow,
				Romanization: f.Romanization,
				Falavay:      f.Falavay,
				Overridden:   f.Overridden,
			})
		}
		writeJSON(w, r, http.StatusOK, resp)
	}
}

func handleEvolve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		q := evolveQuery{Form: query.Get("form"), Ctx: query.Get("ctx"), Stress: query.Get("stress")}
		if !checkQuery(w, r, q) {
			return
		}
		ctx := lv.NonAugmented
		if q.Ctx != "" {
			ctx, _ = lv.ParseContext(q.Ctx)
		}
		stress := 0
		if q.Stress != "" {
			stress, _ = strconv.Atoi(q.Stress)
		}

		m, err := pk.ParseMorpheme(q.Form)
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		sf, err := m.SurfaceForm(stress)
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		start := time.Now()
		out, err := lv.Evolve(sf, ctx)
		evolveDuration.WithLabelValues(ctx.Abbreviation()).Observe(time.Since(start).Seconds())
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, evolveResponse{
			Form:    q.Form,
			Context: ctx.String(),
			Proto:   protoTranscription(sf),
			Result:  daughterTranscription(out),
		})
	}
}

func handleParse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := parseQuery{Lang: r.URL.Query().Get("lang"), Form: r.URL.Query().Get("form")}
		if !checkQuery(w, r, q) {
			return
		}
		resp := parseResponse{Language: q.Lang, Form: q.Form}
		switch semantics.Language(q.Lang) {
		case semantics.ProtoKasanic:
			m, err := pk.ParseMorpheme(q.Form)
			if err != nil {
				writeFailure(w, r, err)
				return
			}
			sf, err := m.SurfaceForm(0)
			if err != nil {
				writeFailure(w, r, err)
				return
			}
			resp.transcriptionJSON = protoTranscription(sf)
		case semantics.Lauvinko:
			m, err := lv.ParseMorpheme(q.Form)
			if err != nil {
				writeFailure(w, r, err)
				return
			}
			resp.transcriptionJSON = daughterTranscription(m.Surface)
			resp.Falavay = m.Falavay()
		}
		writeJSON(w, r, http.StatusOK, resp)
	}
}

func handleGloss(d *lauvinko.Dictionary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := glossQuery{Text: r.URL.Query().Get("text")}
		if !checkQuery(w, r, q) {
			return
		}
		g, err := lauvinko.ParseGloss(d, q.Text)
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, glossResponse{
			Analysis: g.Analysis(),
			Words:    len(g.Words),
			transcriptionJSON: transcriptionJSON{
				Broad:        g.BroadTranscription(),
				Narrow:       g.NarrowTranscription(),
				Romanization: g.Romanization(),
				Falavay:      g.Falavay(),
			},
		})
	}
}

// newHandler wires the routes, request IDs and CORS around d.
func newHandler(d *lauvinko.Dictionary, logger *zap.Logger, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/entries", handleEntries(d))
	mux.HandleFunc("GET /api/entry", handleEntry(d))
	mux.HandleFunc("GET /api/evolve", handleEvolve())
	mux.HandleFunc("GET /api/parse", handleParse())
	mux.HandleFunc("GET /api/gloss", handleGloss(d))
	mux.Handle("GET /metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return c.Handler(withRequestID(logger, mux))
}

// ---- main ---------------------------------------------------------------

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the configuration file")
	addr := flag.String("addr", "", "listen address (overrides server.addr)")
	flag.Parse()

	if err := run(*configPath, *addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, addr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("loading dictionary", zap.String("path", cfg.Dictionary))
	d, err := lauvinko.Load(cfg.Dictionary)
	if err != nil {
		return err
	}
	logger.Info("dictionary loaded", zap.Int("entries", d.Len()))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newHandler(d, logger, cfg.Server.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Server.Addr))
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
