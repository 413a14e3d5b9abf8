// Command hexmaze builds a hexagonal perfect maze from a YAML config
// and/or flags, prints its statistics, and optionally solves a shortest
// path through it.
//
// Usage:
//
//	hexmaze -radius 5 -seed 12345 -from 0,0 -to 2,0
//	hexmaze -config maze.yaml
//
// Flags override the config file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hexmaze/astar"
	"github.com/katalvlaran/hexmaze/builder"
	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/internal/config"
	"github.com/katalvlaran/hexmaze/maze"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		radius     = flag.Int("radius", -1, "maze radius (overrides config)")
		seed       = flag.Uint64("seed", 0, "random seed (overrides config)")
		seeded     = false
		start      = flag.String("start", "", "carving start tile as q,r")
		from       = flag.String("from", "", "path query start tile as q,r")
		to         = flag.String("to", "", "path query goal tile as q,r")
	)
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seeded = true
		}
	})

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *radius >= 0 {
		cfg.Maze.Radius = *radius
	}
	if seeded {
		cfg.Maze.Seed = seed
	}
	if *start != "" {
		c, err := parseCoord(*start)
		if err != nil {
			log.Fatalf("invalid -start: %v", err)
		}
		cfg.Maze.Start = c
	}
	if *from != "" || *to != "" {
		if *from == "" || *to == "" {
			log.Fatal("-from and -to must be given together")
		}
		f, err := parseCoord(*from)
		if err != nil {
			log.Fatalf("invalid -from: %v", err)
		}
		t, err := parseCoord(*to)
		if err != nil {
			log.Fatalf("invalid -to: %v", err)
		}
		cfg.Path.From, cfg.Path.To = f, t
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run builds the maze described by cfg and writes the report to w.
func run(cfg *config.Config, w *os.File) error {
	b := builder.New().WithRadius(cfg.Maze.Radius)
	if cfg.Maze.Seed != nil {
		b.WithSeed(*cfg.Maze.Seed)
	}
	if cfg.Maze.Start != nil {
		b.WithStart(hexgrid.At(cfg.Maze.Start.Q, cfg.Maze.Start.R))
	}

	m, err := b.Build()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "maze: radius=%d tiles=%d open-edges=%d\n",
		cfg.Maze.Radius, m.Len(), openEdges(m))

	if cfg.Path.From != nil && cfg.Path.To != nil {
		pFrom := hexgrid.At(cfg.Path.From.Q, cfg.Path.From.R)
		pTo := hexgrid.At(cfg.Path.To.Q, cfg.Path.To.R)
		path, err := astar.FindPath(m, pFrom, pTo)
		if err != nil {
			return err
		}
		if path == nil {
			fmt.Fprintf(w, "path %v -> %v: none\n", pFrom, pTo)
		} else {
			fmt.Fprintf(w, "path %v -> %v: %d steps: %s\n",
				pFrom, pTo, len(path)-1, formatPath(path))
		}
	}

	return nil
}

// openEdges counts the open undirected edges of m. For a perfect maze this
// is always tile count − 1.
func openEdges(m *maze.Maze) int {
	total := 0
	for pos, t := range m.Tiles() {
		for _, d := range hexgrid.Directions {
			if !t.Walls().Contains(d) && m.Contains(pos.Neighbor(d)) {
				total++
			}
		}
	}

	return total / 2 // each open edge is counted from both sides
}

// parseCoord parses "q,r" into a config coordinate.
func parseCoord(s string) (*config.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("want q,r, got %q", s)
	}
	q, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, err
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}

	return &config.Coord{Q: q, R: r}, nil
}

// formatPath renders a path as "(q,r) (q,r) ...".
func formatPath(path []hexgrid.Hex) string {
	var sb strings.Builder
	for i, h := range path {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "(%d,%d)", h.Q, h.R)
	}

	return sb.String()
}
