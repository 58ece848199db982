package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"youtube-summarizer/infrastructure/auth"
	"youtube-summarizer/infrastructure/cache"
	geminiclient "youtube-summarizer/infrastructure/clients/gemini"
	"youtube-summarizer/infrastructure/clients/graph"
	transcriptclient "youtube-summarizer/infrastructure/clients/transcript"
	youtubeclient "youtube-summarizer/infrastructure/clients/youtube"
	"youtube-summarizer/infrastructure/configuration"
	"youtube-summarizer/infrastructure/logger"
	"youtube-summarizer/infrastructure/persistence"
	"youtube-summarizer/interfaces/cli"
	"youtube-summarizer/usecase"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load env from files (non-destructive; OS env still has precedence),
	// then re-apply overrides picked up from them.
	configuration.LoadEnvFromFile("config.env", ".env")
	configuration.Reload()

	conf := configuration.C

	// Startup gate: everything else degrades gracefully, this does not.
	if conf.Google.APIKey == "" {
		fmt.Println("Please set the GOOGLE_API_KEY environment variable")
		fmt.Println("You can get your API key from: https://makersuite.google.com/app/apikey")
		os.Exit(1)
	}

	summarizer, err := geminiclient.NewGeminiClient(&geminiclient.Config{
		APIKey: conf.Google.APIKey,
		Model:  conf.Google.Model,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Gemini client initialization failed")
		os.Exit(1)
	}

	summarizeUC := usecase.NewSummarizeUsecase(transcriptclient.NewTranscriptClient(), summarizer)

	// Video metadata shares the Google API key; without it page titles fall
	// back to a default.
	if metadata, err := youtubeclient.NewYouTubeClient(ctx, conf.Google.APIKey); err != nil {
		logger.GetLogger().WithField("error", err).Warn("YouTube metadata client unavailable - using default video titles")
	} else {
		summarizeUC = summarizeUC.WithMetadata(metadata)
	}

	// Optional transcript cache
	if conf.RedisClient.Host != "" {
		redisClient, err := cache.NewCache(
			ctx,
			fmt.Sprintf("%s:%s", conf.RedisClient.Host, conf.RedisClient.Port),
			conf.RedisClient.Username,
			conf.RedisClient.Password,
		)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing without transcript cache")
		} else {
			summarizeUC = summarizeUC.WithCache(cache.NewTranscriptCache(redisClient))
			logger.GetLogger().Info("Transcript cache enabled")
		}
	}

	// OneNote wiring only when Microsoft credentials are configured
	var onenoteUC usecase.IOneNoteUsecase
	if conf.OneNoteEnabled() {
		tokenStore := persistence.NewTokenFileStore(conf.Microsoft.TokenCacheFile)
		authManager := auth.NewAuthManager(&auth.Config{
			ClientID:     conf.Microsoft.ClientID,
			ClientSecret: conf.Microsoft.ClientSecret,
			RedirectURI:  conf.Microsoft.RedirectURI,
			CallbackPort: conf.App.CallbackPort,
		}, tokenStore)
		onenoteUC = usecase.NewOneNoteUsecase(
			authManager,
			graph.NewGraphClient(),
			conf.OneNote.NotebookName,
			conf.OneNote.SectionName,
		)
	} else {
		logger.GetLogger().Info("Microsoft credentials not configured - OneNote features disabled")
	}

	app := cli.NewCLI(summarizeUC, onenoteUC, conf.App.TranscriptLanguage, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		logger.GetLogger().WithField("error", err).Error("CLI terminated with an error")
		os.Exit(2)
	}
}
