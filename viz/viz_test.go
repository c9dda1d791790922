package viz_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/grid"
	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/search"
	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/viz"
)

func TestConfig_Derive(t *testing.T) {
	cfg := viz.DefaultConfig()
	cellSize, cols, err := cfg.Derive()
	require.NoError(t, err)
	assert.Equal(t, 2, cellSize, "700px / 350 rows")
	assert.Equal(t, 650, cols, "1300px / 2px cells")
}

func TestConfig_Derive_Errors(t *testing.T) {
	cases := []struct {
		name string
		cfg  viz.Config
		err  error
	}{
		{"ZeroWidth", viz.Config{Width: 0, Height: 700, Rows: 10, FPS: 60}, viz.ErrBadSurface},
		{"ZeroRows", viz.Config{Width: 100, Height: 100, Rows: 0, FPS: 60}, viz.ErrBadSurface},
		{"ZeroFPS", viz.Config{Width: 100, Height: 100, Rows: 10, FPS: 0}, viz.ErrBadFPS},
		{"TooManyRows", viz.Config{Width: 100, Height: 50, Rows: 100, FPS: 60}, viz.ErrRowsExceedHeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := tc.cfg.Derive()
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLerp_Endpoints(t *testing.T) {
	assert.Equal(t, viz.ColorStart, viz.Lerp(viz.ColorStart, viz.ColorEnd, 0))
	assert.Equal(t, viz.ColorEnd, viz.Lerp(viz.ColorStart, viz.ColorEnd, 1))
	// Clamped outside [0,1].
	assert.Equal(t, viz.ColorStart, viz.Lerp(viz.ColorStart, viz.ColorEnd, -3))
	assert.Equal(t, viz.ColorEnd, viz.Lerp(viz.ColorStart, viz.ColorEnd, 7))
}

func TestGradient_Shape(t *testing.T) {
	assert.Nil(t, viz.Gradient(viz.ColorStart, viz.ColorEnd, 0))
	assert.Equal(t, []viz.RGB{viz.ColorStart}, viz.Gradient(viz.ColorStart, viz.ColorEnd, 1))

	ramp := viz.Gradient(viz.ColorStart, viz.ColorEnd, 9)
	require.Len(t, ramp, 9)
	assert.Equal(t, viz.ColorStart, ramp[0])
	assert.Equal(t, viz.ColorEnd, ramp[8])
	// Channels move monotonically along a linear ramp:
	// R falls 84→62, G rises 119→234, B rises 232→250.
	for i := 1; i < len(ramp); i++ {
		assert.GreaterOrEqual(t, ramp[i-1].R, ramp[i].R)
		assert.LessOrEqual(t, ramp[i-1].G, ramp[i].G)
		assert.LessOrEqual(t, ramp[i-1].B, ramp[i].B)
	}
}

func TestRender_Frame(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)
	require.True(t, g.SetStart(g.At(0, 0)))
	require.True(t, g.SetEnd(g.At(1, 2)))
	require.True(t, g.SetObstacle(g.At(0, 1)))
	g.At(1, 0).MarkOpen()
	g.At(1, 1).MarkVisited()

	want := strings.Join([]string{
		"┌───┐",
		"│S░·│",
		"│oxE│",
		"└───┘",
		"",
	}, "\n")
	assert.Equal(t, want, viz.Render(g))
}

func TestStatusLine(t *testing.T) {
	res := &search.Result{Algorithm: search.AStar, Length: 8, Elapsed: 3 * time.Millisecond}
	assert.Equal(t, "A path of length 8 is found in 3ms.", viz.StatusLine(res, nil))
	assert.Equal(t, "No Path Found.", viz.StatusLine(nil, search.ErrNoPath))
	assert.Equal(t, "Pathfinding was cancelled.", viz.StatusLine(nil, search.ErrCancelled))
	assert.Empty(t, viz.StatusLine(nil, nil))
}
