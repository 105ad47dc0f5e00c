package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrsandeep/mango-marks/internal/models"
	"github.com/vrsandeep/mango-marks/internal/testutil"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScanJSON(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := testutil.WriteBookmarksFile(t, dir, "bookmarks.json", testutil.SampleTree)

	out, err := run(t, "scan", path, "--offline", "--json")
	require.NoError(t, err)

	var items []models.DisplayItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 3)
	assert.Equal(t, "One Piece", items[0].Name)
	assert.Equal(t, models.DefaultPortrait, items[0].Portrait)
	// Offline lookups fall back, so the type comes from the bookmark itself.
	assert.Equal(t, models.Manhwa, items[2].Type)
}

func TestScanFlags(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := testutil.WriteBookmarksFile(t, dir, "bookmarks.json", testutil.SampleTree)

	t.Run("keep unknown", func(t *testing.T) {
		out, err := run(t, "scan", path, "--offline", "--json", "--keep-unknown")
		require.NoError(t, err)
		var items []models.DisplayItem
		require.NoError(t, json.Unmarshal([]byte(out), &items))
		require.Len(t, items, 4)
		assert.True(t, items[3].Flagged)
		assert.Equal(t, "go.dev", items[3].SiteName)
	})

	t.Run("filters", func(t *testing.T) {
		out, err := run(t, "scan", path, "--provider", "mockadex", "--json", "--site", "mangareader.to", "--chapter", "1049")
		require.NoError(t, err)
		var items []models.DisplayItem
		require.NoError(t, json.Unmarshal([]byte(out), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "2", items[0].ID)
		assert.Contains(t, items[0].Portrait, "placehold.co")
	})

	t.Run("table", func(t *testing.T) {
		out, err := run(t, "scan", path, "--offline", "--sort", "name")
		require.NoError(t, err)
		assert.Contains(t, out, "NAME")
		assert.Contains(t, out, "Solo Leveling")
		assert.Contains(t, out, "Total: 3")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := run(t, "scan", path, "--provider", "anilist")
		assert.ErrorContains(t, err, "anilist")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "scan", dir+"/nope.json", "--offline")
		assert.Error(t, err)
	})
}

func TestScanNetscapeExport(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := testutil.WriteBookmarksFile(t, dir, "bookmarks.html", `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
  <DT><H3>Reading</H3>
  <DL><p>
    <DT><A HREF="https://mangadex.org/title/berserk">Berserk manga Chapter 370</A>
  </DL><p>
</DL><p>`)

	out, err := run(t, "scan", path, "--offline", "--json")
	require.NoError(t, err)
	var items []models.DisplayItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Berserk", items[0].Name)
	assert.Equal(t, "370", items[0].Chapter)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}
