package engine

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/termdrift/pkg/layout"
	"github.com/go-drift/termdrift/pkg/reactive"
)

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

var parent = layout.Rows(layout.Options{}, static("a"), static("b"))

func TestTree(t *testing.T) {
	e := newEngine(t, parent, &fakeTerminal{w: 4, h: 2})
	reactive.Settle()

	tree := Tree(e.Root())
	assert.Equal(t, "ready", tree.Status)
	assert.Equal(t, e.Root().ID().String(), tree.ID)
	assert.Len(t, tree.Children, 2)
}

func TestDebugServer(t *testing.T) {
	e := newEngine(t, parent, &fakeTerminal{w: 4, h: 2})
	reactive.Settle()
	e.Frame()

	srv, err := startDebugServer(e, "127.0.0.1:0")
	require.NoError(t, err)
	defer srv.stop()
	base := "http://" + srv.addr()

	code, body := get(t, base+"/health")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	code, body = get(t, base+"/tree")
	require.Equal(t, http.StatusOK, code)
	var tree ContextNode
	require.NoError(t, json.Unmarshal([]byte(body), &tree))
	assert.Len(t, tree.Children, 2)

	_, body = get(t, base+"/frame")
	assert.Contains(t, body, "a\nb")

	_, body = get(t, base+"/frames")
	assert.Contains(t, body, `"count": 1`)

	code, body = get(t, base+"/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "termdrift_engine_frames_total 1")
}

