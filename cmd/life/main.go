package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aldewereld/game-of-life/internal/app"
	"github.com/aldewereld/game-of-life/pkg/core"
	_ "github.com/aldewereld/game-of-life/pkg/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Params {
		if p, ok := sim.(core.ParameterProvider); ok {
			printParameters(p.Parameters())
		}
		return
	}

	sim.Reset(cfg.Seed)
	for gen := 1; gen <= cfg.Steps; gen++ {
		sim.Step()
		if !cfg.Quiet || gen == cfg.Steps {
			fmt.Fprint(os.Stdout, sim)
		}
		if pc, ok := sim.(core.PopulationCounter); ok {
			log.Printf("%s: generation %d population %d", sim.Name(), gen, pc.Population())
		}
	}
}

func printParameters(snap core.ParameterSnapshot) {
	for _, group := range snap.Groups {
		fmt.Printf("[%s]", group.Name)
		if group.Summary != "" {
			fmt.Printf(" %s", group.Summary)
		}
		fmt.Println()
		for _, p := range group.Params {
			fmt.Printf("  %-8s %-8s %s\n", p.Key, p.Type, p.Value)
		}
	}
}
