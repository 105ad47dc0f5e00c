package bookmarks

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/vrsandeep/mango-marks/internal/models"
)

var ErrNotNetscape = errors.New("file does not appear to be a valid Netscape bookmark file")

// DecodeNetscape parses a Netscape bookmark export (the bookmarks.html
// every browser can produce) and rebuilds its folder tree.
func DecodeNetscape(r io.Reader) ([]models.RawNode, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML: %w", err)
	}

	if doc.Find("dt > a, dt > h3").Length() == 0 {
		return nil, ErrNotNetscape
	}

	top := doc.Find("dl").First()
	if top.Length() == 0 {
		return nil, ErrNotNetscape
	}
	return parseList(top), nil
}

// parseList converts the <dt> entries that belong directly to dl.
func parseList(dl *goquery.Selection) []models.RawNode {
	owner := dl.Get(0)
	var nodes []models.RawNode
	dl.Find("dt").Each(func(_ int, dt *goquery.Selection) {
		if closestList(dt.Get(0)) != owner {
			return
		}
		if a := dt.ChildrenFiltered("a").First(); a.Length() > 0 {
			title := strings.TrimSpace(a.Text())
			node := models.RawNode{Title: &title}
			if href, ok := a.Attr("href"); ok {
				node.URL = &href
			}
			nodes = append(nodes, node)
			return
		}
		if h3 := dt.ChildrenFiltered("h3").First(); h3.Length() > 0 {
			name := strings.TrimSpace(h3.Text())
			folder := models.RawNode{Title: &name}
			if sub := dt.ChildrenFiltered("dl").First(); sub.Length() > 0 {
				folder.Children = parseList(sub)
			} else if next := dt.Next(); next.Is("dl") {
				folder.Children = parseList(next)
			}
			nodes = append(nodes, folder)
		}
	})
	return nodes
}

func closestList(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == "dl" {
			return p
		}
	}
	return nil
}
