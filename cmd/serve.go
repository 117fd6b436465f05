package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ssudhiravinesh/blindsight/config"
	"github.com/ssudhiravinesh/blindsight/internal/analyze"
	"github.com/ssudhiravinesh/blindsight/internal/api"
	"github.com/ssudhiravinesh/blindsight/internal/fetch"
	"github.com/ssudhiravinesh/blindsight/internal/history"
	"github.com/ssudhiravinesh/blindsight/internal/notify"
	"github.com/ssudhiravinesh/blindsight/internal/scan"
	"github.com/ssudhiravinesh/blindsight/internal/severity"
)

// serveCmd is the cobra command that starts the blindsight API server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the blindsight api server",
	Run: func(cmd *cobra.Command, _ []string) {
		err := serve(cmd.Context())
		cobra.CheckErr(err)
	},
}

// init registers the serve command and its flags on the root command
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.PersistentFlags().String("config", "./config/.config.yaml", "config file location")
}

// serve initializes dependencies and starts the blindsight API server
func serve(ctx context.Context) error {
	cfgPath := k.String("config")

	cfg, err := config.Load(&cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg.Server.Debug = cfg.Server.Debug || k.Bool("debug")
	cfg.Server.Pretty = cfg.Server.Pretty || k.Bool("pretty")

	analyzer := setupAnalyzer(cfg)

	relay, err := setupRelay(cfg)
	if err != nil {
		return fmt.Errorf("setting up fetch relay: %w", err)
	}

	store, err := setupHistory(cfg)
	if err != nil {
		return fmt.Errorf("setting up history: %w", err)
	}

	if store != nil {
		defer func() { _ = store.Close() }()
	}

	controller := scan.NewController(
		scan.Options{
			SignupThreshold:  cfg.Scan.SignupThreshold,
			Policy:           scan.AutoPolicy(cfg.Scan.Policy),
			SettleDelay:      cfg.Scan.SettleDelay,
			CountdownSeconds: cfg.Scan.CountdownSeconds,
			NoticeSeconds:    cfg.Scan.NoticeSeconds,
		},
		relay,
		analyzer,
		recorderOrNil(store),
		history.NewResultCache(),
		setupNotifier(cfg),
	)

	var storeIface api.HistoryStore
	if store != nil {
		storeIface = store
	}

	handler := api.NewRouter(controller, storeIface, api.WithMaxBodySize(cfg.Server.MaxBodySize))

	srv := &http.Server{
		Addr:         cfg.Server.Listen,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGracePeriod)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("listen", cfg.Server.Listen).Msg("starting blindsight service")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}

// setupAnalyzer builds the provider chain from config. Providers are tried
// in order: the managed gateway, then OpenAI, then Gemini.
func setupAnalyzer(cfg *config.Config) *analyze.Analyzer {
	providers := []analyze.Provider{
		analyze.NewGatewayProvider(cfg.Analyze.GatewayURL, cfg.Analyze.GatewayAPIKey),
		analyze.NewOpenAIProvider(cfg.Analyze.OpenAIAPIKey),
		analyze.NewGeminiProvider(cfg.Analyze.GeminiAPIKey),
	}

	configured := 0

	for _, p := range providers {
		if p.Available() {
			configured++
		}
	}

	if configured == 0 {
		log.Warn().Msg("no analysis provider configured, scans will fail until one is set")
	}

	return analyze.NewAnalyzer(
		providers,
		analyze.WithMaxRetries(cfg.Analyze.MaxRetries),
		analyze.WithRetryBackoff(cfg.Analyze.RetryBackoff),
	)
}

// setupRelay builds the privileged fetch relay from config
func setupRelay(cfg *config.Config) (*fetch.Relay, error) {
	return fetch.NewRelay(
		fetch.WithTimeout(cfg.Fetch.Timeout),
		fetch.WithMaxRedirects(cfg.Fetch.MaxRedirects),
		fetch.WithMaxResponseBodySize(cfg.Fetch.MaxResponseBodySize),
		fetch.WithUserAgent(cfg.Fetch.UserAgent),
	)
}

// setupHistory opens the scan history store, or returns nil when disabled
func setupHistory(cfg *config.Config) (*history.Store, error) {
	if !cfg.History.Enabled {
		return nil, nil
	}

	return history.NewStore(cfg.History.Path, cfg.History.MaxEntries)
}

// recorderOrNil avoids handing the controller a typed nil recorder
func recorderOrNil(store *history.Store) scan.Recorder {
	if store == nil {
		return nil
	}

	return store
}

// setupNotifier builds the webhook notifier, or returns nil when no
// webhook is configured
func setupNotifier(cfg *config.Config) scan.Notifier {
	if cfg.Notify.WebhookURL == "" {
		return nil
	}

	client, err := notify.New(
		cfg.Notify.WebhookURL,
		notify.WithHTTPClient(&http.Client{Timeout: cfg.Notify.RequestTimeout}),
	)
	if err != nil {
		log.Warn().Err(err).Msg("webhook notifications disabled")
		return nil
	}

	return notify.NewNotifier(client, notify.WithMinSeverity(severity.Level(cfg.Notify.MinSeverity)))
}
