package main

import (
	"anagram/internal/config"
	"anagram/internal/di"
	"anagram/internal/logger"
	"anagram/internal/repository"
	"anagram/internal/web"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// @title        Anagram API
// @version      1.0
// @description  Looks up anagrams of a word in a preloaded dictionary.
// @BasePath     /
func main() {
	app := fx.New(
		fx.Provide(
			config.MustLoad,
			logger.ProvideLogger,
			di.ProvideIndex,
			func(idx *repository.InMemoryIndex) repository.Index {
				return idx
			},
			web.NewAnagramHandler,
		),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),

		fx.Invoke(
			di.StartHttpServer,
		),
	)
	app.Run()
}
