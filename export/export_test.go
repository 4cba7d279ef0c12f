package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/builder"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dfs"
	"github.com/katalvlaran/graphwalk/dijkstra"
	"github.com/katalvlaran/graphwalk/export"
	"github.com/katalvlaran/graphwalk/layout"
)

// diamondPlus: the reference diamond plus an isolated node 4.
func diamondPlus(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 4))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.SetPosition(0, core.Point{X: 10, Y: 20}))
	return g
}

// decode round-trips through JSON text so assertions see what a consumer sees.
func decode(t *testing.T, s *export.Snapshot) (string, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, s))
	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	return buf.String(), doc
}

func TestFromGraph(t *testing.T) {
	s, err := export.FromGraph(diamondPlus(t))
	require.NoError(t, err)

	require.Len(t, s.Nodes, 5)
	require.Len(t, s.Edges, 4)
	assert.Equal(t, &core.Point{X: 10, Y: 20}, s.Nodes[0].Pos)
	assert.Nil(t, s.Nodes[1].Pos)
	assert.Equal(t, 3, s.Nodes[2].Degree)
	assert.Equal(t, 0, s.Nodes[4].Degree)
	assert.Equal(t, export.Edge{From: 0, To: 2, Weight: 4}, s.Edges[2])

	text, doc := decode(t, s)
	assert.NotContains(t, text, "search")
	assert.NotContains(t, text, "walk")
	nodes := doc["nodes"].([]any)
	assert.Equal(t, map[string]any{"x": 10.0, "y": 20.0}, nodes[0].(map[string]any)["pos"])

	_, err = export.FromGraph(nil)
	assert.ErrorIs(t, err, export.ErrNilGraph)
}

func TestAttachSearch(t *testing.T) {
	g := diamondPlus(t)
	res, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)
	path, err := res.Path(3)
	require.NoError(t, err)

	s, err := export.FromGraph(g)
	require.NoError(t, err)
	require.NoError(t, s.AttachSearch(res, path))

	text, doc := decode(t, s)
	assert.NotContains(t, text, "Inf")
	assert.NotContains(t, text, "NaN")

	search := doc["search"].(map[string]any)
	assert.Equal(t, 0.0, search["source"])
	assert.Equal(t, 3.0, search["target"])
	assert.Equal(t, []any{0.0, 1.0, 2.0, 3.0}, search["path"])
	assert.Equal(t, true, search["complete"])

	nodes := doc["nodes"].([]any)
	src := nodes[0].(map[string]any)
	assert.Equal(t, 0.0, src["distance"])
	assert.NotContains(t, src, "parent")
	assert.Equal(t, true, src["on_path"])

	n3 := nodes[3].(map[string]any)
	assert.Equal(t, 4.0, n3["distance"])
	assert.Equal(t, 2.0, n3["parent"])

	lonely := nodes[4].(map[string]any)
	assert.Equal(t, false, lonely["reachable"])
	assert.NotContains(t, lonely, "distance")
	assert.NotContains(t, lonely, "parent")
	assert.NotContains(t, lonely, "on_path")

	// 0-1, 1-2, 2-3 are on the path; 0-2 is not.
	onPath := 0
	for _, e := range s.Edges {
		if e.OnPath {
			onPath++
		}
	}
	assert.Equal(t, 3, onPath)
	assert.False(t, s.Edges[2].OnPath)
}

func TestAttachSearch_Errors(t *testing.T) {
	g := diamondPlus(t)
	s, err := export.FromGraph(g)
	require.NoError(t, err)

	assert.ErrorIs(t, s.AttachSearch(nil, nil), export.ErrNilResult)

	small, _ := core.NewGraph(2)
	res, err := dijkstra.ShortestPaths(small, 0)
	require.NoError(t, err)
	assert.ErrorIs(t, s.AttachSearch(res, nil), export.ErrSizeMismatch)

	res, err = dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)
	assert.ErrorIs(t, s.AttachSearch(res, []core.NodeID{0, 9}), export.ErrSizeMismatch)
}

func TestAttachWalk(t *testing.T) {
	g := diamondPlus(t)
	visits, err := dfs.Walk(g, 0)
	require.NoError(t, err)

	s, err := export.FromGraph(g)
	require.NoError(t, err)
	require.NoError(t, s.AttachWalk(visits))

	_, doc := decode(t, s)
	walk := doc["walk"].([]any)
	require.Len(t, walk, 4)
	assert.Equal(t, map[string]any{"node": 0.0, "depth": 0.0}, walk[0])
	assert.Equal(t, map[string]any{"node": 1.0, "parent": 0.0, "depth": 1.0}, walk[1])

	assert.ErrorIs(t, s.AttachWalk([]dfs.Visit{{Node: 42}}), export.ErrSizeMismatch)
}

// TestEncode_GeneratedGraph checks a full pipeline snapshot stays finite.
func TestEncode_GeneratedGraph(t *testing.T) {
	g, err := builder.Generate(30, 25,
		builder.WithSeed(3),
		builder.WithBounds(layout.Bounds{Width: 640, Height: 480}),
		builder.WithEuclideanWeight(),
	)
	require.NoError(t, err)

	res, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)

	s, err := export.FromGraph(g)
	require.NoError(t, err)
	require.NoError(t, s.AttachSearch(res, nil))

	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, s))
	assert.False(t, strings.Contains(buf.String(), "Inf"))
	assert.True(t, json.Valid(buf.Bytes()))
}
