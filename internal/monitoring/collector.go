package monitoring

import (
	"context"
	"time"

	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/entity"

	"github.com/sirupsen/logrus"
)

// InventorySource is the slice of the inventory service the collector needs.
type InventorySource interface {
	WindowSummaries(ctx context.Context) ([]*entity.WindowSummary, error)
}

// InventoryCollector refreshes the tickets_by_state gauges on a fixed
// interval so the pool state is scrapeable without hitting the handlers.
type InventoryCollector struct {
	inventory InventorySource
	interval  time.Duration
}

func NewInventoryCollector(inventory InventorySource, interval time.Duration) *InventoryCollector {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &InventoryCollector{
		inventory: inventory,
		interval:  interval,
	}
}

func (c *InventoryCollector) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	// Publish once at startup, then on every tick.
	c.collect(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.collect(ctx)
		}
	}
}

func (c *InventoryCollector) collect(ctx context.Context) {
	summaries, err := c.inventory.WindowSummaries(ctx)
	if err != nil {
		logrus.Errorf("Failed to collect inventory metrics: %v", err)
		return
	}

	for _, summary := range summaries {
		SetWindowState(string(summary.Window.Label), summary.FreeCount, summary.SoldCount)
	}
}
