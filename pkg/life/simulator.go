package life

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/aldewereld/game-of-life/pkg/core"

	"golang.org/x/sync/errgroup"
)

// Simulator owns a Grid and advances it one generation per Update.
//
// The grid returned by World is the live board. Writes through it must not
// overlap with Update; Edit and Cycle are the guarded alternatives.
type Simulator struct {
	mu sync.Mutex

	name       string
	cfg        Config
	rule       Rule
	grid       *Grid
	generation int
}

// New wraps an existing grid in a Conway simulator at generation 0.
func New(grid *Grid) *Simulator {
	cfg := DefaultConfig()
	cfg.Width = grid.Width()
	cfg.Height = grid.Height()
	return &Simulator{name: "life", cfg: cfg, rule: Conway, grid: grid}
}

// NewWithConfig returns a simulator with an empty board configured from cfg.
func NewWithConfig(cfg Config) (*Simulator, error) {
	rule, err := ParseRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Simulator{name: "life", cfg: cfg, rule: rule, grid: grid}, nil
}

// Name returns the simulation identifier.
func (s *Simulator) Name() string { return s.name }

// Size returns the grid dimensions.
func (s *Simulator) Size() core.Size { return s.World().Size() }

// Cells exposes the current grid values.
func (s *Simulator) Cells() []int { return s.World().Cells() }

// Rule returns the transition rule in use.
func (s *Simulator) Rule() Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rule
}

// World returns the live grid.
func (s *Simulator) World() *Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Generation returns the number of updates completed since construction
// or the last Reset.
func (s *Simulator) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Edit writes value at (x, y) and reports whether the cell exists.
func (s *Simulator) Edit(x, y, value int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.grid.InBounds(x, y) {
		return false
	}
	s.grid.Set(x, y, value)
	return true
}

// Cycle advances the state at (x, y) to the next one modulo States.
func (s *Simulator) Cycle(x, y int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Cycle(x, y)
}

// Reset clears the board and restarts the generation count. With a positive
// density the board is then seeded; a zero seed falls back to the
// configured one.
func (s *Simulator) Reset(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Clear()
	s.generation = 0
	if s.cfg.Density <= 0 {
		return
	}
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	core.FillDensity(core.NewRNG(effective), s.grid.Cells(), s.cfg.Density, Alive)
}

// Step advances the simulation by one generation.
func (s *Simulator) Step() { s.Update() }

// Update computes the next generation into a fresh grid, makes it the
// current one and returns it.
func (s *Simulator) Update() *Grid {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.grid
	next := &Grid{w: cur.w, h: cur.h, data: make([]int, len(cur.data))}

	if s.cfg.Workers <= 1 || cur.h < 2 {
		s.stepRows(cur, next, 0, cur.h)
	} else {
		var g errgroup.Group
		for _, band := range rowBands(cur.h, s.cfg.Workers) {
			start, end := band[0], band[1]
			g.Go(func() error {
				s.stepRows(cur, next, start, end)
				return nil
			})
		}
		_ = g.Wait()
	}

	s.grid = next
	s.generation++
	return next
}

// stepRows fills rows [start, end) of next from cur.
func (s *Simulator) stepRows(cur, next *Grid, start, end int) {
	for y := start; y < end; y++ {
		for x := 0; x < cur.w; x++ {
			next.data[next.Index(x, y)] = s.rule.Next(cur.Get(x, y), cur.Neighbours(x, y))
		}
	}
}

// rowBands splits h rows into at most n contiguous [start, end) bands.
func rowBands(h, n int) [][2]int {
	if n > h {
		n = h
	}
	bands := make([][2]int, 0, n)
	size := h / n
	extra := h % n
	start := 0
	for i := 0; i < n; i++ {
		end := start + size
		if i < extra {
			end++
		}
		bands = append(bands, [2]int{start, end})
		start = end
	}
	return bands
}

// Population counts the live cells of the current grid.
func (s *Simulator) Population() int { return s.World().Population() }

// String renders the current grid.
func (s *Simulator) String() string { return s.World().String() }

// Parameters reports the simulator's tunables.
func (s *Simulator) Parameters() core.ParameterSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.grid.w),
				intParam("h", "Height", s.grid.h),
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: s.rule.String()},
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				floatParam("density", "Density", s.cfg.Density),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.cfg.Seed, 10)},
			},
		},
		{
			Name:    "Execution",
			Summary: fmt.Sprintf("generation %d", s.generation),
			Params: []core.Parameter{
				intParam("workers", "Workers", s.cfg.Workers),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func factory(name string, rule Rule) core.Factory {
	return func(cfg map[string]string) (core.Sim, error) {
		base := DefaultConfig()
		base.Rule = rule.String()
		sim, err := NewWithConfig(base.WithMap(cfg))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		sim.name = name
		return sim, nil
	}
}

func init() {
	core.Register("life", factory("life", Conway))
	core.Register("highlife", factory("highlife", HighLife))
	core.Register("seeds", factory("seeds", Seeds))
}
