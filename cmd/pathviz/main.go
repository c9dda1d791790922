// Command pathviz animates grid pathfinding in the terminal: it builds a
// maze or random scenario, runs the selected algorithm step by step at
// the configured frame rate, then draws the reconstructed path as a
// growing trail. With --serve it additionally pushes every step over
// WebSocket for external renderers.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/grid"
	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/maze"
	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/path"
	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/search"
	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/stream"
	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/viz"
)

// clearScreen rehomes the cursor and wipes the frame between redraws.
const clearScreen = "\033[H\033[2J"

func main() {
	// Load .env if present; flags still win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: loading .env: %v", err)
	}

	cmd := &cli.Command{
		Name:  "pathviz",
		Usage: "visualise A*, Dijkstra and Greedy BFS over generated grids",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Aliases: []string{"w"}, Value: 130, Usage: "surface width in pixels"},
			&cli.IntFlag{Name: "height", Value: 70, Usage: "surface height in pixels"},
			&cli.IntFlag{Name: "rows", Aliases: []string{"r"}, Value: 35, Usage: "grid row count"},
			&cli.IntFlag{Name: "fps", Aliases: []string{"f"}, Value: 120, Usage: "animation frames per second"},
			&cli.StringFlag{Name: "algorithm", Aliases: []string{"a"}, Value: "astar", Usage: "astar | dijkstra | greedy"},
			&cli.BoolFlag{Name: "random", Usage: "random scenario instead of a maze"},
			&cli.FloatFlag{Name: "prob", Value: 0.3, Usage: "obstacle probability for --random"},
			&cli.IntFlag{Name: "seed", Usage: "RNG seed (0 = wall clock)"},
			&cli.BoolFlag{Name: "quick", Aliases: []string{"q"}, Usage: "skip per-step frames, show only the result"},
			&cli.BoolFlag{Name: "show-carve", Aliases: []string{"s"}, Usage: "animate scenario generation"},
			&cli.StringFlag{Name: "serve", Usage: "address to stream frames on (e.g. :8080), empty = off"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// run wires flags into the engine and drives one full visualised search.
func run(ctx context.Context, cmd *cli.Command) error {
	cfg := viz.Config{
		Width:  int(cmd.Int("width")),
		Height: int(cmd.Int("height")),
		Rows:   int(cmd.Int("rows")),
		FPS:    int(cmd.Int("fps")),
	}
	alg, err := search.ParseAlgorithm(cmd.String("algorithm"))
	if err != nil {
		return err
	}
	cfg.Algorithm = alg

	_, cols, err := cfg.Derive()
	if err != nil {
		return err
	}

	g, err := grid.New(cfg.Rows, cols)
	if err != nil {
		return err
	}

	var hub *stream.Hub
	if addr := cmd.String("serve"); addr != "" {
		hub = stream.NewHub()
		go hub.Run()
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", hub.ServeWS)
		go func() {
			if err := http.ListenAndServe(addr, mux); err != nil {
				log.Printf("stream server: %v", err)
			}
		}()
		log.Printf("streaming frames on ws://%s/ws", addr)
	}

	quick := cmd.Bool("quick")
	frame := newFramer(cfg.FPS, quick)

	if err := generate(ctx, cmd, g, frame); err != nil {
		return err
	}
	if hub != nil {
		hub.BroadcastGrid(g)
	}
	frame.force(g)

	res, runErr := runSearch(ctx, cfg, g, hub, frame)

	if res != nil {
		if err := drawPath(g, hub, frame); err != nil {
			return err
		}
	}
	frame.force(g)

	status := viz.StatusLine(res, runErr)
	fmt.Println(status)
	if hub != nil {
		hub.BroadcastStatus(status)
		// Leave the stream up long enough for viewers to catch the finale.
		time.Sleep(time.Second)
	}

	// "No path" and "cancelled" are outcomes, not failures.
	return nil
}

// generate builds the scenario chosen by the flags.
func generate(ctx context.Context, cmd *cli.Command, g *grid.Grid, frame *framer) error {
	opts := []maze.Option{maze.WithContext(ctx)}
	if seed := cmd.Int("seed"); seed != 0 {
		opts = append(opts, maze.WithSeed(int64(seed)))
	}

	if cmd.Bool("random") {
		opts = append(opts, maze.WithObstacleProb(cmd.Float("prob")))
		if cmd.Bool("show-carve") {
			opts = append(opts, maze.WithOnScatter(func(_ *grid.Cell) { frame.draw(g) }))
		}

		return maze.Scatter(g, opts...)
	}

	if cmd.Bool("show-carve") {
		opts = append(opts, maze.WithOnCarve(func(_, _ *grid.Cell) { frame.draw(g) }))
	}

	return maze.Carve(g, opts...)
}

// runSearch steps the engine at frame pace, redrawing unless quick mode.
func runSearch(ctx context.Context, cfg viz.Config, g *grid.Grid, hub *stream.Hub, frame *framer) (*search.Result, error) {
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithAlgorithm(cfg.Algorithm),
	}
	if hub != nil {
		opts = append(opts,
			search.WithOnVisit(func(c *grid.Cell) { hub.BroadcastCell(c) }),
			search.WithOnOpen(func(c *grid.Cell) { hub.BroadcastCell(c) }),
		)
	}

	r, err := search.New(g, opts...)
	if err != nil {
		return nil, err
	}

	for {
		st, err := r.Step()
		switch {
		case st == search.StatusPathFound:
			return r.Result(), nil
		case st.Terminal():
			return nil, err
		}
		frame.draw(g)
	}
}

// drawPath animates the reconstructed route one cell per frame.
func drawPath(g *grid.Grid, hub *stream.Hub, frame *framer) error {
	tr, err := path.NewTracer(g)
	if err != nil {
		return err
	}
	for {
		c, _, ok := tr.Next()
		if !ok {
			return nil
		}
		if hub != nil {
			hub.BroadcastCell(c)
		}
		frame.draw(g)
	}
}

// framer paces and paints ASCII frames; quick mode drops everything but
// forced frames.
type framer struct {
	tick  *time.Ticker
	quick bool
	buf   strings.Builder
}

func newFramer(fps int, quick bool) *framer {
	return &framer{tick: time.NewTicker(time.Second / time.Duration(fps)), quick: quick}
}

// draw paints one paced frame unless quick mode is on.
func (f *framer) draw(g *grid.Grid) {
	if f.quick {
		return
	}
	<-f.tick.C
	f.paint(g)
}

// force paints immediately regardless of quick mode or pacing.
func (f *framer) force(g *grid.Grid) { f.paint(g) }

func (f *framer) paint(g *grid.Grid) {
	f.buf.Reset()
	f.buf.WriteString(clearScreen)
	viz.RenderTo(&f.buf, g)
	fmt.Print(f.buf.String())
}
