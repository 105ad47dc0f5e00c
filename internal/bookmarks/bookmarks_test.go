package bookmarks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrsandeep/mango-marks/internal/models"
)

func node(title, url string, children ...models.RawNode) models.RawNode {
	n := models.RawNode{Children: children}
	if title != "" {
		n.Title = models.StringPtr(title)
	}
	if url != "" {
		n.URL = models.StringPtr(url)
	}
	return n
}

func TestFlatten(t *testing.T) {
	tree := []models.RawNode{
		node("", "", // root folder without title or url
			node("Bookmarks bar", "",
				node("Solo Leveling Chapter 110", "https://asura.gg/solo-110"),
				node("Reading", "",
					node("One Piece Ch 1049", "https://mangareader.to/y"),
					node("", "https://no-title.example"),
				),
			),
			node("Tower of God Manhwa", "https://webtoons.com/tog"),
		),
	}

	got := Flatten(tree)
	require.Len(t, got, 3)
	assert.Equal(t, "Solo Leveling Chapter 110", got[0].Title)
	assert.Equal(t, "One Piece Ch 1049", got[1].Title)
	assert.Equal(t, "Tower of God Manhwa", got[2].Title)
	assert.Equal(t, Count(tree), len(got))

	ids := make(map[string]bool)
	for _, b := range got {
		assert.False(t, ids[b.ID], "duplicate id %s", b.ID)
		ids[b.ID] = true
	}
}

func TestFlatten_MixedIDs(t *testing.T) {
	withID := func(id, title string) models.RawNode {
		n := node(title, "https://"+title+".example")
		n.ID = id
		return n
	}

	t.Run("generated id never reuses a supplied one", func(t *testing.T) {
		got := Flatten([]models.RawNode{
			withID("", "a"),
			withID("0", "b"),
		})
		require.Len(t, got, 2)
		assert.Equal(t, "0-1", got[0].ID)
		assert.Equal(t, "0", got[1].ID)
	})

	t.Run("pre-order index when nothing collides", func(t *testing.T) {
		got := Flatten([]models.RawNode{
			withID("", "a"),
			withID("bm-0", "b"),
			node("folder", "", withID("", "c")),
		})
		require.Len(t, got, 3)
		assert.Equal(t, []string{"0", "bm-0", "3"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("duplicate supplied ids", func(t *testing.T) {
		got := Flatten([]models.RawNode{
			withID("7", "a"),
			withID("7", "b"),
			withID("7-1", "c"),
			withID("", "d"),
		})
		require.Len(t, got, 4)
		assert.Equal(t, "7", got[0].ID)
		assert.Equal(t, "7-2", got[1].ID)
		assert.Equal(t, "7-1", got[2].ID)
		assert.Equal(t, "3", got[3].ID)
	})
}

func TestFlatten_PreOrderIncludesNodeWithChildren(t *testing.T) {
	parent := node("Parent", "https://parent.example",
		node("Child", "https://child.example"),
	)
	got := Flatten([]models.RawNode{parent})
	require.Len(t, got, 2)
	assert.Equal(t, "Parent", got[0].Title)
	assert.Equal(t, "Child", got[1].Title)
}

func TestFlatten_KeepsExplicitFields(t *testing.T) {
	n := node("My Manga Bookmark", "https://mymangasite.com")
	n.ID = "100"
	n.Chapter = "12"
	n.Type = "Manga"
	got := Flatten([]models.RawNode{n})
	require.Len(t, got, 1)
	assert.Equal(t, "100", got[0].ID)
	assert.Equal(t, "12", got[0].Chapter)
	assert.Equal(t, "Manga", got[0].Type)
}

func TestDecodeJSON(t *testing.T) {
	t.Run("array of nodes", func(t *testing.T) {
		input := `[{"title":"A","url":"https://a"},{"title":"Folder","children":[{"title":"B","url":"https://b"}]}]`
		nodes, err := DecodeJSON(strings.NewReader(input))
		require.NoError(t, err)
		assert.Len(t, Flatten(nodes), 2)
	})

	t.Run("extension envelope", func(t *testing.T) {
		input := `{"action":"bookmarksData","bookmarks":[{"id":"0","title":"","children":[{"id":"1","title":"A","url":"https://a"}]}]}`
		nodes, err := DecodeJSON(strings.NewReader(input))
		require.NoError(t, err)
		flat := Flatten(nodes)
		require.Len(t, flat, 1)
		assert.Equal(t, "1", flat[0].ID)
	})

	t.Run("wrong field types are dropped", func(t *testing.T) {
		input := `[{"title":42,"url":"https://a"},{"title":"B","url":null},{"title":"C","url":"https://c","children":"nope"},"junk"]`
		nodes, err := DecodeJSON(strings.NewReader(input))
		require.NoError(t, err)
		flat := Flatten(nodes)
		require.Len(t, flat, 1)
		assert.Equal(t, "C", flat[0].Title)
	})

	t.Run("numeric ids", func(t *testing.T) {
		nodes, err := DecodeJSON(strings.NewReader(`[{"id":7,"title":"A","url":"https://a"}]`))
		require.NoError(t, err)
		assert.Equal(t, "7", Flatten(nodes)[0].ID)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := DecodeJSON(strings.NewReader("  "))
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := DecodeJSON(strings.NewReader("hello"))
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}

const chromiumFile = `{
  "checksum": "abc",
  "roots": {
    "other": {"children": [{"id": "20", "name": "Other Manga", "type": "url", "url": "https://other.example"}], "name": "Other bookmarks", "type": "folder"},
    "bookmark_bar": {
      "children": [
        {"id": "10", "name": "Solo Leveling Manhwa", "type": "url", "url": "https://asura.gg/solo"},
        {"id": "11", "name": "manga", "type": "folder", "children": [
          {"id": "12", "name": "Berserk Chapter 370", "type": "url", "url": "https://mangadex.org/berserk"}
        ]}
      ],
      "name": "Bookmarks bar",
      "type": "folder"
    },
    "synced": {"children": [], "name": "Mobile bookmarks", "type": "folder"}
  },
  "version": 1
}`

func TestDecodeChromium(t *testing.T) {
	nodes, err := DecodeChromium(strings.NewReader(chromiumFile))
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Equal(t, "Bookmarks bar", *nodes[0].Title)

	flat := Flatten(nodes)
	require.Len(t, flat, 3)
	assert.Equal(t, "Solo Leveling Manhwa", flat[0].Title)
	assert.Equal(t, "Berserk Chapter 370", flat[1].Title)
	assert.Equal(t, "Other Manga", flat[2].Title)
	// Chromium's node type is not a series type.
	assert.Empty(t, flat[0].Type)

	sniffed, err := DecodeJSON(strings.NewReader(chromiumFile))
	require.NoError(t, err)
	assert.Equal(t, flat, Flatten(sniffed))
}

const netscapeFile = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><H3 ADD_DATE="1700000000">Reading</H3>
    <DL><p>
        <DT><A HREF="https://mangareader.to/x" ADD_DATE="1700000001">One Piece Chapter 1050 - mangareader</A>
        <DT><H3>Nested</H3>
        <DL><p>
            <DT><A HREF="https://webtoons.com/tog">Tower of God</A>
        </DL><p>
    </DL><p>
    <DT><A HREF="https://example.com">Example</A>
</DL><p>`

func TestDecodeNetscape(t *testing.T) {
	nodes, err := DecodeNetscape(strings.NewReader(netscapeFile))
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "Reading", *nodes[0].Title)
	assert.Nil(t, nodes[0].URL)

	flat := Flatten(nodes)
	require.Len(t, flat, 3)
	assert.Equal(t, "One Piece Chapter 1050 - mangareader", flat[0].Title)
	assert.Equal(t, "https://mangareader.to/x", flat[0].URL)
	assert.Equal(t, "Tower of God", flat[1].Title)
	assert.Equal(t, "Example", flat[2].Title)
}

func TestDecodeNetscape_NotABookmarkFile(t *testing.T) {
	_, err := DecodeNetscape(strings.NewReader("<html><body><p>hi</p></body></html>"))
	assert.ErrorIs(t, err, ErrNotNetscape)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	htmlPath := filepath.Join(dir, "bookmarks.html")
	require.NoError(t, os.WriteFile(htmlPath, []byte(netscapeFile), 0644))
	nodes, err := Load(htmlPath)
	require.NoError(t, err)
	assert.Len(t, Flatten(nodes), 3)

	chromePath := filepath.Join(dir, "Bookmarks")
	require.NoError(t, os.WriteFile(chromePath, []byte(chromiumFile), 0644))
	nodes, err = Load(chromePath)
	require.NoError(t, err)
	assert.Len(t, Flatten(nodes), 3)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
