package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/partsdb-backend/internal/adapter/blob/s3"
	"github.com/heartmarshall/partsdb-backend/internal/adapter/export/xlsx"
	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres/attachment"
	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres/counter"
	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres/deletionreq"
	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres/history"
	partrepo "github.com/heartmarshall/partsdb-backend/internal/adapter/postgres/part"
	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/partsdb-backend/internal/auth"
	"github.com/heartmarshall/partsdb-backend/internal/config"
	"github.com/heartmarshall/partsdb-backend/internal/service/oplog"
	"github.com/heartmarshall/partsdb-backend/internal/service/part"
	"github.com/heartmarshall/partsdb-backend/internal/transport/middleware"
	"github.com/heartmarshall/partsdb-backend/internal/transport/rest"
)

// Options are the command-line overrides of the server process.
type Options struct {
	ConfigPath string // empty means CONFIG_PATH or ./config.yaml
	Migrate    bool   // apply migrations before serving
}

// Run is the application entry point. It wires storage, services and the
// HTTP server, then serves until ctx is cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.LoadFile(opts.ConfigPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("attachments_driver", cfg.Attachments.Driver),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.Migrate {
		if err := Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	attachments, err := newAttachmentRepo(ctx, pool, cfg.Attachments, cfg.Parts.MaxAttachmentBytes)
	if err != nil {
		return err
	}

	validator, err := newTokenValidator(ctx, cfg.Auth, logger)
	if err != nil {
		return err
	}

	sink := oplog.NewSink(logger, audit.New(pool), cfg.Audit.BufferSize, cfg.Audit.WriteTimeout)
	sink.Start()

	parts := part.NewService(logger, part.Config{
		LabPrefix:          cfg.Parts.LabPrefix,
		DeleteWindow:       cfg.Parts.DeleteWindow,
		LegacyDeleteGuard:  cfg.Parts.LegacyDeleteGuard,
		MaxAttachmentBytes: cfg.Parts.MaxAttachmentBytes,
		MaxPageSize:        cfg.Parts.MaxPageSize,
	}, part.Deps{
		Parts:       partrepo.New(pool),
		Counters:    counter.New(pool),
		Attachments: attachments,
		History:     history.New(pool),
		Deletions:   deletionreq.New(pool),
		Users:       user.NewCachedDirectory(user.New(pool), cfg.Users.CacheSize, cfg.Users.CacheTTL),
		Audit:       sink,
		Tx:          postgres.NewTxManager(pool),
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	global := []middleware.Middleware{
		middleware.RequestID,
		chimw.RealIP,
		middleware.ClientIP,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Metrics,
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		global = append(global, limiter.Limit(cfg.RateLimit.WritesPerMinute))
	}
	global = append(global, middleware.Auth(validator))

	router := rest.NewRouter(
		rest.NewPartHandler(parts, xlsx.NewExporter(), cfg.Server.MaxBodyBytes, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
		middleware.Chain(global...),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
		// Handlers are done; flush what they queued.
		if err := sink.Close(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("audit sink: %w", err))
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

func newAttachmentRepo(ctx context.Context, pool *pgxpool.Pool, cfg config.AttachmentsConfig, maxSize int64) (*attachment.Repo, error) {
	opts := []attachment.Option{attachment.WithMaxSize(maxSize)}
	if cfg.Compress {
		opts = append(opts, attachment.WithCompression())
	}
	if cfg.Driver == config.AttachmentDriverS3 {
		store, err := s3.New(ctx, s3.Config{
			Bucket:          cfg.Bucket,
			Region:          cfg.Region,
			Endpoint:        cfg.Endpoint,
			PathStyle:       cfg.PathStyle,
			Prefix:          cfg.Prefix,
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
		})
		if err != nil {
			return nil, fmt.Errorf("attachment store: %w", err)
		}
		opts = append(opts, attachment.WithContentStore(store))
	}
	return attachment.New(pool, opts...)
}

// newTokenValidator accepts locally issued HS256 tokens and, when a JWKS
// endpoint is configured, tokens from the identity provider.
func newTokenValidator(ctx context.Context, cfg config.AuthConfig, logger *slog.Logger) (auth.Chain, error) {
	groups := auth.GroupNames{Users: cfg.UsersGroup, Admins: cfg.AdminsGroup}

	var validators []auth.Validator
	if cfg.JWTSecret != "" {
		validators = append(validators, auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL, groups))
	}
	if cfg.JWKSURL != "" {
		v, err := auth.NewJWKSVerifier(ctx, cfg.JWKSURL, cfg.JWKSIssuer, cfg.JWKSRefreshInterval, groups, logger)
		if err != nil {
			return nil, err
		}
		validators = append(validators, v)
	}
	return auth.NewChain(validators...), nil
}
