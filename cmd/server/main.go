// Command server exposes the sentence renderers as a JSON REST API.
//
// Endpoints (lang is one of the registered grammars):
//
//	GET  /api/languages
//	POST /api/render?lang=<name>[&punctuate=true]       body: a sentence document
//	POST /api/render/list?lang=<name>[&punctuate=true]  body: {"sentences":[...]}
//	GET  /api/sample?lang=<name>[&n=<count>][&seed=<uint>][&punctuate=true]
//	GET  /api/examples?lang=<name>[&punctuate=true]
//	GET  /api/vocabulary?lang=<name>
//	GET  /api/schema?lang=<name>[&list=true]
//	GET  /api/inflection?lang=<name>&lemma=<english>
//	GET  /api/lemmatize?lang=<name>&form=<word>
//	POST /api/lemmatize/text?lang=<name>                 body: {"text":"..."}
//	GET  /metrics
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/cours-de-latin/yaduha/languages"
)

const shutdownTimeout = 10 * time.Second

// newHandler builds the routed, instrumented handler tree.
func newHandler(conf *Config, reg *prometheus.Registry) http.Handler {
	m := newMetrics(reg)

	mux := http.NewServeMux()
	route := func(path string, h http.Handler) {
		mux.Handle(path, instrument(m, path, h))
	}
	route("/api/languages", handleLanguages())
	route("/api/render/list", handleRenderList(conf, m))
	route("/api/render", handleRender(conf, m))
	route("/api/sample", handleSample(conf, m))
	route("/api/examples", handleExamples())
	route("/api/vocabulary", handleVocabulary())
	route("/api/schema", handleSchema())
	route("/api/inflection", handleInflection())
	route("/api/lemmatize/text", handleLemmatizeText(conf))
	route("/api/lemmatize", handleLemmatizeWord())
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	c := cors.New(cors.Options{
		AllowedOrigins: conf.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(mux)
}

func main() {
	confPath := flag.String("config", "", "path to a YAML configuration file")
	addr := flag.String("addr", "", "listen address (overrides the configuration)")
	logLevel := flag.String("log-level", "", "debug, info, warning or error (overrides the configuration)")
	logPath := flag.String("log-path", "", "append logs to this file instead of stderr")
	flag.Parse()

	conf, err := LoadConfig(*confPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if *addr != "" {
		conf.ListenAddress = *addr
	}
	if *logLevel != "" {
		conf.LogLevel = *logLevel
	}
	if *logPath != "" {
		conf.LogPath = *logPath
	}
	if err := conf.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := setupLog(conf.LogPath, conf.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := &http.Server{
		Addr:         conf.ListenAddress,
		Handler:      newHandler(conf, reg),
		ReadTimeout:  time.Duration(conf.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(conf.WriteTimeoutSecs) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().
		Str("addr", conf.ListenAddress).
		Strs("languages", languages.Names()).
		Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server error")
	}
	log.Info().Msg("server stopped")
}
