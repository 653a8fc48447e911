package app

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"service-checkout-delivery/internal/config"
	"service-checkout-delivery/internal/gateway/providers"
	"service-checkout-delivery/internal/http/handlers"
	"service-checkout-delivery/internal/logx"
	"service-checkout-delivery/internal/service/delivery"
	"service-checkout-delivery/internal/transport/kafka"
)

func testConfig() *config.Config {
	return &config.Config{
		Port: 8080,
		Delivery: config.Delivery{
			OptionsTTL:      20 * time.Minute,
			ProviderTimeout: time.Second,
			Providers: []config.Provider{
				{Name: "dhl", URL: "http://dhl.local/methods"},
				{Name: "ups", URL: "http://ups.local/methods"},
			},
		},
		ProviderRetry: config.ProviderRetry{MaxAttempts: 2, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond},
	}
}

func setupTestContainer(t *testing.T, cfg *config.Config) *dig.Container {
	t.Helper()

	c := dig.New()

	providers := []struct {
		name     string
		provider any
	}{
		{"context", func() context.Context { return context.Background() }},
		{"logger", logx.Nop},
		{"config", func() *config.Config { return cfg }},
		{"pgxpool", func() *pgxpool.Pool { return &pgxpool.Pool{} }},
	}

	for _, p := range providers {
		err := c.Provide(p.provider)
		require.NoErrorf(t, err, "provide %s", p.name)
	}

	require.NoError(t, registerDomainServices(c))
	require.NoError(t, registerHTTP(c))

	return c
}

func verifyServer(t *testing.T, srv *http.Server) {
	t.Helper()

	require.NotNil(t, srv, "http.Server is nil")
	require.Equal(t, ":8080", srv.Addr)
	require.Greater(t, srv.ReadHeaderTimeout, time.Duration(0))
	require.Greater(t, srv.ReadTimeout, time.Duration(0))
	require.Greater(t, srv.WriteTimeout, time.Duration(0))
	require.Greater(t, srv.IdleTimeout, time.Duration(0))
}

func TestRegisterServiceAndHTTP_ProvidesHttpServerAndHandlers(t *testing.T) {
	t.Parallel()

	c := setupTestContainer(t, testConfig())

	err := c.Invoke(func(
		srv *http.Server,
		base *handlers.Handlers,
		deliveryHandler *handlers.DeliveryHandler,
		svc *delivery.Service,
		assigner *delivery.Assigner,
		publisher *kafka.Publisher,
	) {
		verifyServer(t, srv)
		require.NotNil(t, base)
		require.NotNil(t, deliveryHandler)
		require.NotNil(t, svc)
		require.NotNil(t, assigner)
		require.NotNil(t, publisher)
	})
	require.NoError(t, err)
}

func TestRegisterDomainServices_ExclusionPolicyFollowsConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	c := setupTestContainer(t, cfg)
	err := c.Invoke(func(p providers.ExclusionPolicy) {
		require.IsType(t, providers.NopPolicy{}, p)
	})
	require.NoError(t, err)

	cfg = testConfig()
	cfg.Delivery.ExclusionPolicyURL = "http://policy.local/filter"
	c = setupTestContainer(t, cfg)
	err = c.Invoke(func(p providers.ExclusionPolicy) {
		require.IsType(t, &providers.WebhookPolicy{}, p)
	})
	require.NoError(t, err)
}

func TestProvideAll_Success(t *testing.T) {
	t.Parallel()

	c := dig.New()

	err := provideAll(c,
		func() context.Context { return context.Background() },
		func() time.Duration { return 3 * time.Second },
	)
	require.NoError(t, err)

	err = c.Invoke(func(ctx context.Context, d time.Duration) {
		require.NotNil(t, ctx)
		require.Equal(t, 3*time.Second, d)
	})
	require.NoError(t, err)
}

func TestProvideAll_InvalidProvider(t *testing.T) {
	t.Parallel()

	c := dig.New()

	type bad struct{}
	err := provideAll(c, bad{})
	require.Error(t, err)
}

func TestRegisterDb_UsesDbConnectAndProvidesPool(t *testing.T) {
	t.Parallel()

	c := dig.New()
	ctx := context.Background()

	cfg := &config.Config{
		DB: config.DB{
			Host: "localhost",
			Port: "5432",
			User: "user",
			Pass: "pass",
			Name: "db",
		},
	}

	require.NoError(t, c.Provide(func() context.Context { return ctx }))
	require.NoError(t, c.Provide(func() *config.Config { return cfg }))
	require.NoError(t, c.Provide(logx.Nop))

	stubPool := &pgxpool.Pool{}

	stubConnect := func(
		gotCtx context.Context,
		_ logx.Logger,
		dsn string,
		retries int,
		delay time.Duration,
	) (*pgxpool.Pool, error) {
		require.Equal(t, ctx, gotCtx)
		require.Equal(t, cfg.DB.DSN(), dsn)
		require.Equal(t, 10, retries)
		require.Equal(t, time.Second, delay)
		return stubPool, nil
	}

	err := registerDb(c, stubConnect)
	require.NoError(t, err)

	err = c.Invoke(func(pool *pgxpool.Pool) {
		require.Equal(t, stubPool, pool)
	})
	require.NoError(t, err)
}

func TestRegisterDb_PropagatesConnectError(t *testing.T) {
	t.Parallel()

	c := dig.New()
	require.NoError(t, c.Provide(func() context.Context { return context.Background() }))
	require.NoError(t, c.Provide(func() *config.Config { return &config.Config{} }))
	require.NoError(t, c.Provide(logx.Nop))

	err := registerDb(c, func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error) {
		return nil, fmt.Errorf("db failed")
	})
	require.NoError(t, err)

	err = c.Invoke(func(pool *pgxpool.Pool) { _ = pool })
	require.Error(t, err)
	require.Contains(t, err.Error(), "db failed")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "DEBUG", parseLevel("debug").String())
	require.Equal(t, "WARN", parseLevel(" Warning ").String())
	require.Equal(t, "ERROR", parseLevel("error").String())
	require.Equal(t, "INFO", parseLevel("").String())
	require.Equal(t, "INFO", parseLevel("verbose").String())
}
