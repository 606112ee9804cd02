package di

import (
	"anagram/internal/config"
	"anagram/internal/dictionary"
	"anagram/internal/repository"
	"anagram/internal/web"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ProvideIndex builds the anagram index before anything can serve it. A
// failure aborts the fx graph, so the server never starts without an index.
func ProvideIndex(cfg *config.Config, logger *zap.Logger) (*repository.InMemoryIndex, error) {
	start := time.Now()
	src, err := dictionary.Open(cfg.Dictionary.Path, cfg.Dictionary.Encoding)
	if err != nil {
		logger.Error("failed to open word list", zap.String("path", cfg.Dictionary.Path), zap.Error(err))
		return nil, err
	}
	defer src.Close()

	idx, err := repository.BuildFromSource(context.Background(), src, repository.Options{
		Policy:  cfg.Normalization,
		Dedupe:  cfg.Dictionary.Dedupe,
		Workers: cfg.Dictionary.BuildWorkers,
	})
	if err != nil {
		logger.Error("failed to build index", zap.String("path", src.Path()), zap.Error(err))
		return nil, err
	}

	stats := idx.Stats()
	logger.Info("index built",
		zap.String("path", src.Path()),
		zap.Int("bytes", src.Size()),
		zap.Int("words", stats.Words),
		zap.Int("groups", stats.Groups),
		zap.Int("anagram_groups", stats.AnagramGroups),
		zap.Bool("case_fold", stats.Policy.CaseFold),
		zap.Bool("strip_accents", stats.Policy.StripAccents),
		zap.Duration("took", time.Since(start)),
	)
	return idx, nil
}

func StartHttpServer(lc fx.Lifecycle, anagramHandler *web.AnagramHandler, config *config.Config, logger *zap.Logger) {
	router := chi.NewRouter()

	web.RegisterRoutes(router, anagramHandler)
	address := fmt.Sprintf(":%d", config.HttpPort)
	server := &http.Server{
		Addr:              address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", address)
			if err != nil {
				return err
			}
			logger.Info("server started", zap.String("addr", ln.Addr().String()))
			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("serve error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down server")
			if config.ShutdownTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, config.ShutdownTimeout)
				defer cancel()
			}
			return server.Shutdown(ctx)
		},
	})
}
