package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/callirhoe/internal/server"
	"github.com/matzehuels/callirhoe/pkg/cache"
	"github.com/matzehuels/callirhoe/pkg/observability"
	"github.com/matzehuels/callirhoe/pkg/pipeline"
)

// serveCommand creates the serve command running the HTTP render service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		redisPass string
		redisDB   int
		keyPrefix string
		noCache   bool
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

Endpoints:
  GET  /healthz                   liveness check
  GET  /themes                    available theme variants (JSON)
  GET  /calendar.{svg,png,pdf}    render a calendar from query parameters
  POST /calendar.{svg,png,pdf}    same, with a YAML holiday file as body

Rendered artifacts are cached in Redis when --redis is given, in the local
cache directory otherwise.`,
		Example: `  callirhoe serve --addr :8080
  callirhoe serve --redis redis://cache:6379/0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			var (
				store cache.Cache
				keyer cache.Keyer
				err   error
			)
			switch {
			case noCache:
				store = cache.NewNullCache()
			case redisAddr != "":
				store, err = cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr, Password: redisPass, DB: redisDB})
				if err != nil {
					return fmt.Errorf("connect redis: %w", err)
				}
				keyer = cache.NewScopedKeyer(nil, keyPrefix)
				logger.Info("Using redis cache", "addr", redisAddr, "prefix", keyPrefix)
			default:
				store, err = newCache(false)
				if err != nil {
					return fmt.Errorf("open cache: %w", err)
				}
			}

			observability.Register(observability.NewLogHooks(logger))
			defer observability.Reset()

			runner := pipeline.NewRunner(store, keyer, logger)
			defer runner.Close()

			srv := server.New(runner, logger,
				server.WithThemes(newThemes()),
				server.WithTimeout(timeout))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address (host:port or redis:// URL) for the shared artifact cache")
	cmd.Flags().StringVar(&redisPass, "redis-password", "", "redis password")
	cmd.Flags().IntVar(&redisDB, "redis-db", 0, "redis database number")
	cmd.Flags().StringVar(&keyPrefix, "redis-prefix", "callirhoe:", "prefix of redis cache keys")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().DurationVar(&timeout, "timeout", server.DefaultTimeout, "per-request timeout")

	return cmd
}
