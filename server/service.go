// Copyright 2022 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2022 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2022 Department of Linguistics,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/czcorpus/satzgen/config"
	"github.com/czcorpus/satzgen/exercise"
	"github.com/czcorpus/satzgen/exstore"
	"github.com/czcorpus/satzgen/globctx"
	"github.com/czcorpus/satzgen/lexicon"
	"github.com/czcorpus/satzgen/reporting"
	"github.com/czcorpus/satzgen/trainer"
	"github.com/czcorpus/hltscl"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func initTrainerEngine(
	conf *config.Configuration,
	globalCtx *globctx.Context,
) http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	apiRoutes := engine.Group("/")
	apiRoutes.Use(uniresp.AlwaysJSONContentType())
	limiter := newIPRateLimiter(conf.Limits)
	apiRoutes.Use(limiter.Middleware())

	actions := NewActions(globalCtx)
	apiRoutes.POST("/exercise", actions.CreateExercise)
	apiRoutes.GET("/exercise/:exerciseId/solution", actions.ExerciseSolution)
	apiRoutes.POST("/sentence", actions.CreateSentence)
	apiRoutes.GET("/conjugation/:verb", actions.Conjugation)
	apiRoutes.GET("/verbs", actions.VerbList)
	apiRoutes.GET("/verbs/:verb", actions.VerbInfo)
	apiRoutes.GET("/templates", actions.TemplateList)
	apiRoutes.GET("/validation", actions.ValidateCatalogs)

	apiRoutes.GET("/service/ping", func(ctx *gin.Context) {
		globalCtx.ReportingWriter.Write(&reporting.PingReport{
			DateTime: time.Now(),
			Status:   200,
		})
		uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"ok": true})
	})

	return engine
}

func createPGPool(conf hltscl.PgConf) *pgxpool.Pool {
	conn, err := hltscl.CreatePool(conf)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	return conn
}

func CreateTDBWriter(
	ctx context.Context, conf *reporting.Conf, loc *time.Location) (ans reporting.ReportingWriter) {
	if conf != nil {
		pgPool := createPGPool(conf.DB)
		ans = reporting.NewReportingWriter(pgPool, loc, ctx)

	} else {
		ans = &reporting.NullWriter{}
	}
	return
}

// LoadLexicalData reads the verb catalog, template patterns and the
// active verb list as configured. Console actions share this loading
// path with the HTTP service.
func LoadLexicalData(conf *config.Configuration) (
	*lexicon.Catalog, []*exercise.TemplatePattern, []string, error,
) {
	catalog, err := lexicon.LoadCatalog(&conf.Lexicon)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load verb catalog: %w", err)
	}
	patterns, err := exercise.LoadTemplatePatterns(conf.Lexicon.TemplatesPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load template catalog: %w", err)
	}
	active, err := lexicon.LoadActiveVerbs(conf.Lexicon.ActiveVerbsPath, catalog)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load active verb list: %w", err)
	}
	return catalog, patterns, active, nil
}

func CreateGlobalCtx(
	ctx context.Context,
	conf *config.Configuration,
	tDBWriter reporting.ReportingWriter,
) (*globctx.Context, error) {
	ans := globctx.NewGlobalContext(ctx)

	tDBWriter.AddTableWriter(reporting.GenerationMonitoringTable)
	tDBWriter.AddTableWriter(reporting.ServiceMonitoringTable)

	catalog, patterns, active, err := LoadLexicalData(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create global ctx: %w", err)
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ans.TimezoneLocation = conf.TimezoneLocation()
	ans.ReportingWriter = tDBWriter
	ans.GenLogger = globctx.NewGenerationLogger(tDBWriter)
	ans.Generator = trainer.NewGenerator(&conf.Trainer, catalog, patterns, active, rng)
	ans.ExerciseStore = exstore.NewStore(ctx, conf.ExerciseStore)
	return ans, nil
}

// reloadLexicalData re-reads all data files and swaps them into the
// running generator. On any error the previous data stay in use.
func reloadLexicalData(conf *config.Configuration, globalCtx *globctx.Context) {
	catalog, patterns, active, err := LoadLexicalData(conf)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload lexical data, keeping the current catalogs")
		return
	}
	globalCtx.Generator.Reload(catalog, patterns, active)
	log.Info().
		Int("numVerbs", catalog.Size()).
		Int("numTemplates", len(patterns)).
		Int("numActiveVerbs", len(active)).
		Msg("reloaded lexical data")
}

func RunService(conf *config.Configuration) {
	syscallChan := make(chan os.Signal, 1)
	signal.Notify(syscallChan, syscall.SIGHUP)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	tDBWriter := CreateTDBWriter(ctx, conf.Reporting, conf.TimezoneLocation())
	globalCtx, err := CreateGlobalCtx(ctx, conf, tDBWriter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %s", err)
		os.Exit(1)
	}
	reloadChan := make(chan bool)

	go func() {
		for evt := range syscallChan {
			log.Warn().Str("signalName", evt.String()).Msg("received OS signal")
			if evt == syscall.SIGHUP {
				reloadChan <- true
			}
		}
		close(reloadChan)
	}()

	go func() {
		for range reloadChan {
			reloadLexicalData(conf, globalCtx)
		}
	}()

	engine := initTrainerEngine(conf, globalCtx)

	log.Info().Msgf("starting to listen at %s:%d", conf.ServerHost, conf.ServerPort)
	srv := &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", conf.ServerHost, conf.ServerPort),
		WriteTimeout: time.Duration(conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(conf.ServerReadTimeoutSecs) * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	globalCtx.ReportingWriter.LogErrors()

	<-globalCtx.Done()
	// now let's give subsystems some time to save state, clean-up etc.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown error")
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-ctx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}
