package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beekhof/file-stack/pkg/config"
	"github.com/beekhof/file-stack/pkg/render"
	"github.com/beekhof/file-stack/pkg/server"

	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the stack over HTTP",
	Long: `Start the HTTP server. Each browser session gets its own stack, identified by
a cookie. Routes:

  POST /stack/add               add the form field "filename" to the stack
  POST /stack/clear             end the session
  GET  /stack/show              render the stack (?count=N&options=ck|list|panel)
  GET  /stack/panel/{fileName}  render one file as a panel item
  GET  /stack/list/{fileName}   render one file as a list row
  GET  /files/{fileName}        download a file
  GET  /health`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}
	logger := newLogger(cfg)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	renderer, err := render.New("/files/")
	if err != nil {
		return err
	}

	resolver := newResolver(cfg)
	srv := &server.Server{
		Store:     store,
		Resolver:  resolver,
		Renderer:  renderer,
		Logger:    logger,
		Files:     resolver.FS,
		FileTypes: cfg.AcceptFileTypes,
		Namespace: cfg.UploadNamespace,
		CanUpload: canWrite(cfg.RootDir),
	}

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.ListenAddr, "root", cfg.RootDir, "max_items", cfg.MaxItems)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
	}

	if err := store.Save(); err != nil {
		return err
	}
	logger.Info("saved state", "path", config.GetStatePath(GetConfigDir()))
	return nil
}

// canWrite reports whether new files could be created in dir
func canWrite(dir string) bool {
	f, err := os.CreateTemp(dir, ".stack-write-check-*")
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(f.Name())
	return true
}
