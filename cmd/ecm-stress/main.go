package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/gregoriB/ecm/ecm"
)

type Position struct{ X, Y float32 }
type Velocity struct{ DX, DY float32 }
type Health struct{ Current, Max int }
type DamageEvent struct{ Amount int }
type ScoreComponent struct{ Value int }
type GameComponent struct{ Tick int64 }

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting ECM stress test...")

	m := ecm.NewDefaultManager()
	ecm.RegisterComponent[Position](m, ecm.Stack)
	ecm.RegisterComponent[Velocity](m, ecm.Stack)
	ecm.RegisterComponent[Health](m, ecm.Required)
	ecm.RegisterComponent[DamageEvent](m, ecm.Event, ecm.Stack)
	ecm.RegisterComponent[ScoreComponent](m, ecm.NoStack)
	ecm.RegisterComponent[GameComponent](m, ecm.Unique)

	ecm.RegisterTransformation(m, func(_ ecm.EntityID, h Health) Health {
		if h.Current < 0 {
			h.Current = 0
		}
		return h
	})

	log.Printf("Populating manager with %d entities...\n", *entityCount)
	entities := make([]ecm.EntityID, *entityCount)
	for i := range entities {
		e := m.CreateEntity()
		entities[i] = e
		ecm.Add(m, e, Position{X: rand.Float32() * 100, Y: rand.Float32() * 100})
		ecm.Add(m, e, Velocity{DX: rand.Float32() - 0.5, DY: rand.Float32() - 0.5})
		ecm.Add(m, e, Health{Current: 100, Max: 100})
		ecm.Add(m, e, ScoreComponent{Value: 0})
	}

	controller := entities[0]
	ecm.Add(m, controller, GameComponent{Tick: 0})

	report := &Report{
		Duration:        *duration,
		Entities:        *entityCount,
		ComponentTypes:  6,
		UniqueTypes:     1,
		StackedTypes:    3,
		TransformedKeys: 1,
		GCPauseMetrics:  *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalTicks int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			tickStart := time.Now()
			runTick(m, entities, totalTicks)
			tickDuration := time.Since(tickStart)

			report.TickTime.Samples = append(report.TickTime.Samples, tickDuration)
			totalTicks++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = totalTicks
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// runTick exercises the hot operations a real per-frame system would: bulk
// iteration with in-place mutation, event emission and consumption, and
// periodic pruning of the dummy bags Get leaves behind.
func runTick(m *ecm.Manager, entities []ecm.EntityID, tick int64) {
	ecm.All[Position](m).Each(func(id ecm.EntityID, pos *ecm.Bag[Position]) bool {
		vel := ecm.Get[Velocity](m, id)
		vx, ok := vel.Peek()
		if !ok {
			return true
		}
		pos.Mutate(func(p *Position) {
			p.X += vx.DX
			p.Y += vx.DY
		})
		return true
	})

	victim := entities[rand.Intn(len(entities))]
	ecm.Add(m, victim, DamageEvent{Amount: rand.Intn(10) + 1})

	ecm.All[DamageEvent](m).Each(func(id ecm.EntityID, bag *ecm.Bag[DamageEvent]) bool {
		total := 0
		bag.Inspect(func(e DamageEvent) { total += e.Amount })
		health := ecm.Get[Health](m, id)
		health.Mutate(func(h *Health) { h.Current -= total })
		return true
	})
	ecm.ClearByTag(m, ecm.Event)

	if tick%256 == 0 {
		ecm.Prune[Position](m)
		ecm.Prune[Velocity](m)
		ecm.Prune[Health](m)
	}

	if tick%4096 == 0 && len(entities) > 0 {
		m.ClearEntity(entities[rand.Intn(len(entities))])
	}
}
