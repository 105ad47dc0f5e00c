package bookmarks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vrsandeep/mango-marks/internal/models"
)

var (
	ErrUnknownFormat = errors.New("unrecognised bookmark data")
	ErrEmptyInput    = errors.New("no bookmark data provided")
)

// wireNode is the permissive on-the-wire shape of a bookmark node. Every
// field is kept raw so that a value of the wrong type drops only that field
// instead of failing the whole tree.
type wireNode struct {
	ID       json.RawMessage `json:"id"`
	Title    json.RawMessage `json:"title"`
	Name     json.RawMessage `json:"name"`
	URL      json.RawMessage `json:"url"`
	Type     json.RawMessage `json:"type"`
	Chapter  json.RawMessage `json:"chapter"`
	Portrait json.RawMessage `json:"portrait"`
	Children json.RawMessage `json:"children"`
}

// envelope is the message the extension posts back to the page.
type envelope struct {
	Action    string          `json:"action"`
	Bookmarks json.RawMessage `json:"bookmarks"`
}

// DecodeJSON reads a bookmark tree in the shape produced by the browser
// extension: a JSON array of nodes, a single root node, or the
// {"action":"bookmarksData","bookmarks":[...]} envelope. A Chromium profile
// file (an object with "roots") is detected and handed to DecodeChromium.
func DecodeJSON(r io.Reader) ([]models.RawNode, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmark data: %w", err)
	}
	return decodeJSONBytes(data)
}

func decodeJSONBytes(data []byte) ([]models.RawNode, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	switch data[0] {
	case '[':
		return decodeNodeList(data, false)
	case '{':
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, fmt.Errorf("invalid bookmark JSON: %w", err)
		}
		if _, ok := probe["roots"]; ok {
			return decodeChromiumBytes(data)
		}
		if _, ok := probe["bookmarks"]; ok {
			var env envelope
			if err := json.Unmarshal(data, &env); err != nil {
				return nil, fmt.Errorf("invalid bookmark envelope: %w", err)
			}
			return decodeJSONBytes(env.Bookmarks)
		}
		var w wireNode
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("invalid bookmark node: %w", err)
		}
		return []models.RawNode{w.toRaw(false)}, nil
	default:
		return nil, ErrUnknownFormat
	}
}

func decodeNodeList(data []byte, chromium bool) ([]models.RawNode, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("invalid bookmark list: %w", err)
	}
	return convertList(items, chromium), nil
}

func convertList(items []json.RawMessage, chromium bool) []models.RawNode {
	nodes := make([]models.RawNode, 0, len(items))
	for _, item := range items {
		var w wireNode
		if err := json.Unmarshal(item, &w); err != nil {
			// Not an object; nothing usable in it.
			continue
		}
		nodes = append(nodes, w.toRaw(chromium))
	}
	return nodes
}

func (w wireNode) toRaw(chromium bool) models.RawNode {
	node := models.RawNode{ID: idField(w.ID)}

	title := w.Title
	if chromium {
		title = w.Name
	}
	if s, ok := stringField(title); ok {
		node.Title = &s
	}
	if s, ok := stringField(w.URL); ok {
		node.URL = &s
	}
	if !chromium {
		// Chromium uses "type" for url/folder, not for the series type.
		node.Type, _ = stringField(w.Type)
	}
	node.Chapter, _ = stringField(w.Chapter)
	node.Portrait, _ = stringField(w.Portrait)

	var children []json.RawMessage
	if len(w.Children) > 0 && json.Unmarshal(w.Children, &children) == nil {
		node.Children = convertList(children, chromium)
	}
	return node
}

func stringField(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// idField accepts both string and numeric ids.
func idField(raw json.RawMessage) string {
	if s, ok := stringField(raw); ok {
		return s
	}
	var n json.Number
	if len(raw) > 0 && json.Unmarshal(raw, &n) == nil {
		return n.String()
	}
	return ""
}

// chromiumRootOrder is the order Chromium shows its permanent folders in.
var chromiumRootOrder = []string{"bookmark_bar", "other", "synced"}

// DecodeChromium reads a Chromium profile "Bookmarks" file.
func DecodeChromium(r io.Reader) ([]models.RawNode, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmark file: %w", err)
	}
	return decodeChromiumBytes(data)
}

func decodeChromiumBytes(data []byte) ([]models.RawNode, error) {
	var root struct {
		Roots map[string]json.RawMessage `json:"roots"`
	}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid chromium bookmark file: %w", err)
	}
	if root.Roots == nil {
		return nil, ErrUnknownFormat
	}

	keys := make([]string, 0, len(root.Roots))
	seen := make(map[string]bool)
	for _, k := range chromiumRootOrder {
		if _, ok := root.Roots[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range root.Roots {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	keys = append(keys, rest...)

	var nodes []models.RawNode
	for _, k := range keys {
		var w wireNode
		// Some roots (e.g. "sync_transaction_version") are plain strings.
		if err := json.Unmarshal(root.Roots[k], &w); err != nil {
			continue
		}
		nodes = append(nodes, w.toRaw(true))
	}
	return nodes, nil
}

// Load reads a bookmark file from disk, choosing the decoder from the file
// extension: .html/.htm files are Netscape exports, everything else is JSON.
func Load(path string) ([]models.RawNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bookmark file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return DecodeNetscape(f)
	default:
		return DecodeJSON(f)
	}
}
