package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstep/builder"
	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/library"
)

// quiet keeps logs off the test output and the library inside t.TempDir.
func quiet(t *testing.T, args ...string) []string {
	t.Helper()
	lib := filepath.Join(t.TempDir(), "graphs.json")

	return append([]string{"-log-level", "error", "-log-format", "json", "-library", lib}, args...)
}

func TestRun_Sample(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, quiet(t, "-algorithm", "BFS")))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "[0] Initialized BFS with start node A.\n"))
	assert.Contains(t, got, "[1] Visiting node A.\n    Enqueued node B via edge A-B (A→B) with weight 1.")
	assert.Contains(t, got, "BFS finished after 5 steps.")
}

func TestRun_AStarWithTarget(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, quiet(t, "-algorithm", "AStar", "-undirected", "-target", "E")))
	assert.Contains(t, out.String(), "Target node E found. Path: A → F → E (cost 12).")
}

func TestRun_Show(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, quiet(t, "-algorithm", "ConvexHull", "-show")))
	assert.Contains(t, out.String(), "--- step 0 ---")
	assert.Contains(t, out.String(), "Nodes")
}

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, []string{"-list"}))
	names := strings.Fields(out.String())
	assert.Len(t, names, 9)
	assert.Contains(t, names, "Dijkstra")
}

func TestRun_GraphFileAndLibrary(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "path.yaml")
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithUnweighted()}, builder.Path(3))
	require.NoError(t, err)
	f, err := os.Create(graphPath)
	require.NoError(t, err)
	require.NoError(t, core.EncodeYAML(f, g))
	require.NoError(t, f.Close())

	lib := filepath.Join(dir, "graphs.yaml")
	var out bytes.Buffer
	require.NoError(t, run(&out, []string{
		"-log-level", "error", "-library", lib,
		"-graph", graphPath, "-save", "three", "-algorithm", "DFS",
	}))
	assert.Contains(t, out.String(), `Saved graph "three"`)
	assert.Contains(t, out.String(), "DFS finished")

	store, err := library.Open(lib)
	require.NoError(t, err)
	assert.Equal(t, []string{"three"}, store.List())

	out.Reset()
	require.NoError(t, run(&out, []string{"-log-level", "error", "-library", lib, "-library-list"}))
	assert.Equal(t, "three\n", out.String())

	out.Reset()
	require.NoError(t, run(&out, []string{"-log-level", "error", "-library", lib, "-saved", "three", "-algorithm", "Prim"}))
	assert.Contains(t, out.String(), "Prim finished")
}

func TestRun_ExportThenReimport(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"sample.json", "sample.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			var out bytes.Buffer
			require.NoError(t, run(&out, quiet(t, "-undirected", "-export", path, "-algorithm", "BFS")))
			assert.Contains(t, out.String(), "Exported graph to "+path+".")

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()
			format, err := core.FormatFromPath(path)
			require.NoError(t, err)
			got, err := core.Decode(f, format)
			require.NoError(t, err)
			assert.Equal(t, builder.SampleGraph(false).ToSerialized(), got.ToSerialized())

			out.Reset()
			require.NoError(t, run(&out, quiet(t, "-graph", path, "-algorithm", "AStar", "-target", "E")))
			assert.Contains(t, out.String(), "Target node E found. Path: A → F → E (cost 12).")
		})
	}
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, quiet(t, "-algorithm", "Bogus"))
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "known:")

	err = run(&out, quiet(t, "-log-level", "loud"))
	require.ErrorAs(t, err, &exitErr)

	err = run(&out, quiet(t, "-start", "Z"))
	assert.Error(t, err)

	err = run(&out, quiet(t, "-limit", "2"))
	assert.Error(t, err)
	assert.Contains(t, out.String(), "[2]")

	err = run(&out, quiet(t, "stray"))
	require.ErrorAs(t, err, &exitErr)

	err = run(&out, quiet(t, "-export", filepath.Join(t.TempDir(), "g.txt")))
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, exitErr.Message, "export")
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, []string{"-h"}))
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_ConfigThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvstep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: Kruskal\nseed: 3\nrun:\n  step_limit: 9\n"), 0o644))

	cfg, _, exit, err := parse([]string{"-config", path, "-limit", "4"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, "Kruskal", cfg.Algorithm)
	assert.Equal(t, int64(3), cfg.Seed)
	assert.Equal(t, 4, cfg.Run.StepLimit, "explicit flags win over the file")
}
