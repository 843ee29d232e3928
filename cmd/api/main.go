package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-calendar-assistant/config"
	_ "voice-calendar-assistant/docs" // Swagger docs
	"voice-calendar-assistant/internal/event"
	eventHTTP "voice-calendar-assistant/internal/event/delivery/http"
	"voice-calendar-assistant/internal/event/usecase"
	"voice-calendar-assistant/internal/httpserver"
	"voice-calendar-assistant/internal/middleware"
	"voice-calendar-assistant/internal/nlu"
	"voice-calendar-assistant/internal/resolver"
	"voice-calendar-assistant/pkg/gcalendar"
	"voice-calendar-assistant/pkg/llmprovider"
	"voice-calendar-assistant/pkg/log"
	"voice-calendar-assistant/pkg/ollama"
	"voice-calendar-assistant/pkg/speech"
)

// @title       Voice Calendar Assistant API
// @description Voice-driven calendar assistant: natural-language event extraction, date resolution and Google Calendar booking.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Calendar Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date resolver
	res, err := resolver.New(resolver.Options{
		HomeZone:        cfg.Resolver.HomeTimezone,
		AppendUTCOffset: cfg.Resolver.AppendUTCOffset,
	})
	if err != nil {
		logger.Warnf(ctx, "Invalid home timezone %q, falling back to UTC: %v", cfg.Resolver.HomeTimezone, err)
		res, _ = resolver.New(resolver.Options{HomeZone: "UTC", AppendUTCOffset: cfg.Resolver.AppendUTCOffset})
	}

	// 4. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.ParseRetryDelay(),
		MaxTotalTimeout: cfg.LLM.ParseMaxTotalTimeout(),
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d in chain", len(providers))

	// Health probe against the local Ollama when one is in the chain
	var llmPinger httpserver.Pinger
	for _, p := range cfg.LLM.Providers {
		if p.Enabled && p.Name == "ollama" {
			if client, pErr := ollama.New(ollama.Config{BaseURL: p.BaseURL, Model: p.Model}); pErr == nil {
				llmPinger = client
			}
			break
		}
	}

	// 5. Extractor
	extractor, err := nlu.New(logger, manager, cfg.LLM.CacheSize)
	if err != nil {
		logger.Error(ctx, "Failed to initialize extractor: ", err)
		return
	}

	// 6. Google Calendar client (optional)
	var calendar event.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, cErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if cErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", cErr)
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	} else {
		logger.Warn(ctx, "google_calendar.credentials_path not set, calendar operations disabled")
	}

	// 7. Speech to text (optional)
	var transcriber speech.Transcriber
	if cfg.Speech.Enabled {
		whisper, sErr := speech.NewWhisperClient(speech.Config{
			BaseURL:  cfg.Speech.URL,
			Language: cfg.Speech.Language,
		})
		if sErr != nil {
			logger.Warnf(ctx, "Speech engine not available (optional): %v", sErr)
		} else {
			transcriber = whisper
			logger.Infof(ctx, "Speech engine initialized: %s", whisper.Name())
		}
	}

	// 8. Event domain
	eventUC := usecase.New(logger, extractor, res, calendar, cfg.GoogleCalendar.CalendarID, transcriber)
	eventHandler := eventHTTP.New(logger, eventUC)
	mw := middleware.New(logger, cfg.HTTPServer.RateLimitRPS, cfg.HTTPServer.RateLimitBurst)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		EventHandler: eventHandler,
		Middleware:   mw,
		LLMPinger:    llmPinger,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
