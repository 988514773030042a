package service

import (
	"context"
	"time"

	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/a2sh3r/groupmart/internal/repository"
	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Options struct {
	MaxLinks        int
	DraftTimeout    time.Duration
	TransferTimeout time.Duration
	EventRetention  time.Duration
	FallbackPrice   decimal.Decimal
	INRRate         decimal.Decimal
	SeedPrices      map[string]decimal.Decimal
	SaveRetries     uint64
	Clock           func() time.Time
	BackOff         func() backoff.BackOff
}

func (o Options) withDefaults() Options {
	if o.MaxLinks <= 0 {
		o.MaxLinks = 20
	}
	if o.FallbackPrice.IsZero() {
		o.FallbackPrice = decimal.NewFromInt(1)
	}
	if !o.INRRate.IsPositive() {
		o.INRRate = decimal.NewFromInt(85)
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.BackOff == nil {
		retries := o.SaveRetries
		o.BackOff = func() backoff.BackOff {
			eb := backoff.NewExponentialBackOff()
			eb.InitialInterval = 50 * time.Millisecond
			eb.MaxElapsedTime = 2 * time.Second
			return backoff.WithMaxRetries(eb, retries)
		}
	}
	return o
}

// Core owns the marketplace state and the rules that mutate it. The
// services in this package are views over one Core.
type Core struct {
	state *stateStore
	opts  Options
}

func NewCore(repo repository.DocumentRepository, sender Sender, opts Options) *Core {
	opts = opts.withDefaults()
	return &Core{
		state: &stateStore{
			repo:       repo,
			sender:     sender,
			locks:      newKeyedLocker(),
			clock:      opts.Clock,
			newBackOff: opts.BackOff,
			doc:        models.NewDocument(),
		},
		opts: opts,
	}
}

// Load reads the persisted document. A corrupt document is reported as an
// error and not replaced; the caller decides whether to quarantine it.
// The global price table is seeded when the document has none.
func (c *Core) Load(ctx context.Context) error {
	doc, err := c.state.repo.Load(ctx)
	if err != nil {
		return err
	}
	doc.Normalize()

	c.state.mu.Lock()
	c.state.doc = doc
	c.state.mu.Unlock()

	if len(doc.GlobalPrices) > 0 || len(c.opts.SeedPrices) == 0 {
		return nil
	}

	err = c.state.update(ctx, []string{pricesKey}, func(t *tx) error {
		for category, price := range c.opts.SeedPrices {
			t.putGlobalPrice(category, price)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Log.Info("seeded global price table", zap.Int("categories", len(c.opts.SeedPrices)))
	return nil
}

func (c *Core) Close() error {
	return c.state.repo.Close()
}

func (c *Core) now() time.Time {
	return c.state.clock().UTC()
}
