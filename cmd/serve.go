package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/progress"
	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/server"
	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it locally with live reload",
	Long: `Builds the site, serves it on the configured port, and watches the
content and image directories. Edits trigger a rebuild and reload every
open browser tab over a websocket.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (overrides config)")
	serveCmd.Flags().Bool("no-watch", false, "serve without rebuilding on changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Serve.Port = port
	}
	noWatch, _ := cmd.Flags().GetBool("no-watch")

	cache, err := openCache()
	if err != nil {
		return err
	}
	defer cache.Close()

	summary, err := runFullBuild(cfg, cache, progress.NewReporter())
	if err != nil {
		return err
	}
	fmt.Printf("Built %d pages, serving %s on http://localhost:%d\n",
		summary.Pages, cfg.Output.Dir, cfg.Serve.Port)

	srv := server.New(server.Config{
		Port:     cfg.Serve.Port,
		SiteDir:  cfg.Output.Dir,
		AllowAll: cfg.Serve.AllowAll,
	}, summary.Library)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !noWatch {
		watcher := watch.New([]string{cfg.Content.Dir, cfg.Images.SourceDir}, func() {
			// Silent reporter: bar output would garble the request log.
			rebuilt, err := runFullBuild(cfg, cache, progress.Silent{})
			if err != nil {
				fmt.Fprintf(os.Stderr, "rebuild failed: %v\n", err)
				return
			}
			srv.SetLibrary(rebuilt.Library)
			srv.NotifyReload()
			if verbose {
				fmt.Fprintf(os.Stderr, "rebuilt %d pages in %s\n", rebuilt.Pages, rebuilt.Elapsed.Round(time.Millisecond))
			}
		})
		go func() {
			if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
				fmt.Fprintf(os.Stderr, "watcher stopped: %v\n", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
