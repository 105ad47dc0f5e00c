package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleTree is a small extension payload: a folder with three series
// bookmarks and one unrelated page.
const SampleTree = `{"action":"bookmarksData","bookmarks":[{"id":"0","title":"Bookmarks bar","children":[
{"id":"1","title":"Manga: One Piece Chapter 1050 - mangareader","url":"https://mangareader.to/one-piece-1050"},
{"id":"2","title":"One Piece Ch 1049","url":"https://www.mangareader.to/one-piece-1049"},
{"id":"3","title":"Solo Leveling Chapter 110 | Manhwa Online Free","url":"https://asura.gg/solo-leveling"},
{"id":"4","title":"Go documentation","url":"https://go.dev/doc"}
]}]}`

// WriteBookmarksFile writes content to dir/name and returns the path.
func WriteBookmarksFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	filePath := filepath.Join(dir, name)
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write bookmarks file: %v", err)
	}
	return filePath
}
