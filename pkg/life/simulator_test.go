package life

import (
	"sync"
	"testing"

	"github.com/aldewereld/game-of-life/pkg/core"

	"github.com/stretchr/testify/require"
)

func aliveSet(g *Grid) map[[2]int]bool {
	out := map[[2]int]bool{}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Get(x, y) != Dead {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func TestBlinkerOscillation(t *testing.T) {
	sim := New(newTestGrid(t, 5, 5))
	world := sim.World()
	world.Mark(2, 1)
	world.Mark(2, 2)
	world.Mark(2, 3)

	next := sim.Update()
	require.Same(t, next, sim.World(), "Update must return the new current grid")
	require.Equal(t, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, aliveSet(next))

	sim.Update()
	require.Equal(t, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, aliveSet(sim.World()),
		"after second step the blinker returns to its vertical phase")
}

func TestUpdateReplacesGrid(t *testing.T) {
	sim := New(newTestGrid(t, 4, 3))
	old := sim.World()
	old.Mark(0, 0)

	next := sim.Update()
	require.NotSame(t, old, next)
	require.Equal(t, old.Size(), next.Size())
	require.Equal(t, 1, old.Get(0, 0), "the previous grid is not rewritten")
	require.Equal(t, Dead, next.Get(0, 0), "a lone cell dies")
}

func TestGenerationCounter(t *testing.T) {
	sim := New(newTestGrid(t, 6, 6))
	require.Zero(t, sim.Generation())
	for i := 1; i <= 5; i++ {
		sim.Update()
		require.Equal(t, i, sim.Generation())
	}
	sim.Step()
	require.Equal(t, 6, sim.Generation())
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	sim := New(newTestGrid(t, 8, 5))
	for i := 0; i < 3; i++ {
		sim.Update()
	}
	require.Zero(t, sim.World().Population())
}

func TestBlockIsStillLifeAcrossEdges(t *testing.T) {
	sim := New(newTestGrid(t, 6, 6))
	world := sim.World()
	// A 2×2 block split over all four corners of the torus.
	for _, p := range [][2]int{{5, 5}, {0, 5}, {5, 0}, {0, 0}} {
		world.Mark(p[0], p[1])
	}
	want := aliveSet(world)
	for i := 0; i < 4; i++ {
		sim.Update()
		require.Equal(t, want, aliveSet(sim.World()), "generation %d", sim.Generation())
	}
}

func TestGliderWrapsAroundTorus(t *testing.T) {
	const n = 8
	sim := New(newTestGrid(t, n, n))
	world := sim.World()
	for _, p := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		world.Mark(p[0], p[1])
	}
	want := aliveSet(world)

	// A glider moves one cell diagonally every four generations.
	for i := 0; i < 4*n; i++ {
		sim.Update()
		require.Equal(t, 5, sim.World().Population())
	}
	require.Equal(t, want, aliveSet(sim.World()))
}

func TestColoredCellsFollowBinaryRule(t *testing.T) {
	sim := New(newTestGrid(t, 5, 5))
	world := sim.World()
	world.Set(2, 1, 4)
	world.Set(2, 2, 8)
	world.Set(2, 3, 2)

	next := sim.Update()
	require.Equal(t, Alive, next.Get(2, 2), "the survivor takes the Alive state")
	require.Equal(t, Alive, next.Get(1, 2))
	require.Equal(t, Dead, next.Get(2, 1))
}

func TestParallelMatchesSerial(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 37
	cfg.Height = 23
	cfg.Density = 0.35

	serial, err := NewWithConfig(cfg)
	require.NoError(t, err)
	cfg.Workers = 4
	parallel, err := NewWithConfig(cfg)
	require.NoError(t, err)

	serial.Reset(7)
	parallel.Reset(7)
	require.Equal(t, serial.Cells(), parallel.Cells())

	for i := 0; i < 20; i++ {
		serial.Update()
		parallel.Update()
		require.Equal(t, serial.Cells(), parallel.Cells(), "generation %d", i+1)
	}
}

func TestRowBands(t *testing.T) {
	require.Equal(t, [][2]int{{0, 4}, {4, 7}, {7, 10}}, rowBands(10, 3))
	require.Equal(t, [][2]int{{0, 1}, {1, 2}}, rowBands(2, 8))
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 20
	cfg.Height = 16
	cfg.Density = 0.4

	sim, err := NewWithConfig(cfg)
	require.NoError(t, err)

	sim.Reset(99)
	first := append([]int(nil), sim.Cells()...)
	require.NotZero(t, sim.World().Population())

	sim.Update()
	sim.Reset(99)
	require.Zero(t, sim.Generation())
	require.Equal(t, first, sim.Cells())

	sim.Reset(100)
	require.NotEqual(t, first, sim.Cells(), "different seeds should produce different boards")

	sim.Reset(0)
	fromConfig := append([]int(nil), sim.Cells()...)
	sim.Reset(cfg.Seed)
	require.Equal(t, fromConfig, sim.Cells(), "zero seed falls back to the configured seed")
}

func TestResetWithoutDensityClears(t *testing.T) {
	sim := New(newTestGrid(t, 4, 4))
	sim.World().Mark(1, 1)
	sim.Update()
	sim.Reset(5)
	require.Zero(t, sim.World().Population())
	require.Zero(t, sim.Generation())
}

func TestEditAndCycle(t *testing.T) {
	sim := New(newTestGrid(t, 3, 3))
	require.True(t, sim.Edit(1, 1, 6))
	require.Equal(t, 6, sim.World().Get(1, 1))
	require.False(t, sim.Edit(3, 0, 6))
	require.Equal(t, 7, sim.Cycle(1, 1))
	require.Equal(t, OutOfBounds, sim.Cycle(-1, 1))
}

func TestConcurrentEditsAndUpdates(t *testing.T) {
	sim := New(newTestGrid(t, 16, 16))
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			sim.Update()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			sim.Cycle(i%16, (i*3)%16)
		}
	}()
	wg.Wait()
	require.Equal(t, 50, sim.Generation())
}

func TestNewWithConfigErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rule = "B3"
	_, err := NewWithConfig(cfg)
	require.ErrorIs(t, err, ErrInvalidRule)

	cfg = DefaultConfig()
	cfg.Width = 0
	_, err = NewWithConfig(cfg)
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestParametersAndWorkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 9
	cfg.Height = 4
	cfg.Workers = 3
	sim, err := NewWithConfig(cfg)
	require.NoError(t, err)

	values := map[string]string{}
	for _, g := range sim.Parameters().Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	require.Equal(t, "9", values["w"])
	require.Equal(t, "4", values["h"])
	require.Equal(t, "B3/S23", values["rule"])
	require.Equal(t, "3", values["workers"])
}

func TestPopulationTracksCurrentGrid(t *testing.T) {
	sim := New(newTestGrid(t, 5, 5))
	var _ core.PopulationCounter = sim
	require.Zero(t, sim.Population())

	sim.Edit(2, 1, 3)
	sim.Edit(2, 2, 1)
	sim.Edit(2, 3, 8)
	require.Equal(t, 3, sim.Population())

	sim.Update()
	require.Equal(t, 3, sim.Population(), "a blinker keeps three cells")
	sim.Edit(2, 2, Dead)
	require.Equal(t, 2, sim.Population())
}

func TestRegisteredFactories(t *testing.T) {
	for name, rule := range map[string]string{"life": "B3/S23", "highlife": "B36/S23", "seeds": "B2/S"} {
		factory, ok := core.Sims()[name]
		require.True(t, ok, name)

		sim, err := factory(map[string]string{"w": "12", "h": "7"})
		require.NoError(t, err)
		require.Equal(t, name, sim.Name())
		require.Equal(t, core.Size{W: 12, H: 7}, sim.Size())
		require.Equal(t, rule, sim.(*Simulator).Rule().String())
	}

	sim, err := core.Sims()["highlife"](map[string]string{"rule": "B3/S23"})
	require.NoError(t, err)
	require.Equal(t, Conway, sim.(*Simulator).Rule(), "rule key overrides the preset")
}
