package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/swgrt/swgrt/internal/models"
	"github.com/swgrt/swgrt/internal/services/tracker"
	"github.com/swgrt/swgrt/internal/util"
)

// ErrNotEmpty is returned when seeding a store that already holds records.
var ErrNotEmpty = errors.New("store already contains records")

// Config configures the seed data generator.
type Config struct {
	Resources  int
	StockRatio float64
	RandomSeed int64
	Now        time.Time
}

// DefaultConfig returns a default seed configuration.
func DefaultConfig() Config {
	return Config{
		Resources:  24,
		StockRatio: 0.5,
		RandomSeed: 2003,
		Now:        time.Now(),
	}
}

// Result summarises a seeding run.
type Result struct {
	Resources int
	Inventory int
}

// Generator writes sample records through the tracker service.
type Generator struct {
	svc *tracker.Service
	cfg Config
	rng *rand.Rand
	ids int64
}

// NewGenerator creates a new seed data generator.
func NewGenerator(svc *tracker.Service, cfg Config) *Generator {
	return &Generator{
		svc: svc,
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.RandomSeed)),
	}
}

// Generate adds the sample survey. It refuses to touch a non-empty store.
func (g *Generator) Generate(ctx context.Context) (Result, error) {
	if len(g.svc.Resources()) > 0 || len(g.svc.Inventory()) > 0 {
		return Result{}, ErrNotEmpty
	}

	slog.Info("starting seed data generation",
		"resources", g.cfg.Resources,
		"seed", g.cfg.RandomSeed,
	)

	var result Result
	used := make(map[string]bool)

	for i := 0; i < g.cfg.Resources; i++ {
		r, err := g.svc.UpsertResource(ctx, g.resource(i, used))
		if err != nil {
			return result, fmt.Errorf("seeding resource %d: %w", i, err)
		}
		result.Resources++

		if g.rng.Float64() >= g.cfg.StockRatio {
			continue
		}

		qty := int64(g.rng.Intn(40)+1) * 250
		_, err = g.svc.UpsertInventoryItem(ctx, tracker.InventoryInput{
			ID:           g.nextID(),
			ResourceName: tracker.Ptr(r.Name),
			Quantity:     tracker.Ptr(qty),
			Timestamp:    tracker.Ptr(r.Timestamp),
		})
		if err != nil {
			return result, fmt.Errorf("seeding stock for %s: %w", r.Name, err)
		}
		result.Inventory++
	}

	slog.Info("seed data generation complete",
		"resources", result.Resources,
		"inventory", result.Inventory,
	)
	return result, nil
}

func (g *Generator) resource(i int, used map[string]bool) tracker.ResourceInput {
	spec := models.Categories[g.rng.Intn(len(models.Categories))]
	typ := spec.Types[g.rng.Intn(len(spec.Types))]
	planet := models.Planets[g.rng.Intn(len(models.Planets))]

	stats := models.Stats{}
	for _, code := range categoryAttributes[string(spec.Category)] {
		stats[models.Attribute(code)] = g.statValue()
	}

	// Spread timestamps over the last few days, newest last
	ts := g.cfg.Now.Add(-time.Duration(g.cfg.Resources-i) * 3 * time.Hour)

	return tracker.ResourceInput{
		ID:        g.nextID(),
		Name:      tracker.Ptr(g.uniqueName(used)),
		Planet:    tracker.Ptr(planet),
		Category:  tracker.Ptr(spec.Category),
		Type:      tracker.Ptr(typ),
		InSpawn:   tracker.Ptr(g.rng.Float64() < 0.7),
		Stats:     stats,
		Timestamp: tracker.Ptr(models.NewTimestamp(ts)),
	}
}

// statValue skews toward the middle with an occasional high roll.
func (g *Generator) statValue() int {
	v := 1 + g.rng.Intn(700) + g.rng.Intn(300)
	if g.rng.Intn(10) == 0 {
		v = models.HighQuality + g.rng.Intn(101)
	}
	return min(v, 1000)
}

func (g *Generator) nextID() string {
	g.ids++
	return util.DeterministicID(g.cfg.RandomSeed*100000 + g.ids)
}

func (g *Generator) uniqueName(used map[string]bool) string {
	for {
		name := g.name()
		if !used[name] {
			used[name] = true
			return name
		}
	}
}

// name builds a spawn name from two or three syllables.
func (g *Generator) name() string {
	var b strings.Builder
	parts := 2 + g.rng.Intn(2)
	for i := 0; i < parts; i++ {
		b.WriteString(Syllables[g.rng.Intn(len(Syllables))])
	}
	if g.rng.Intn(3) == 0 {
		b.WriteString(Endings[g.rng.Intn(len(Endings))])
	}

	s := b.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
