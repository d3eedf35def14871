// Package html extracts the textual content of HTML documents as text
// sources.
package html

import (
	"errors"
	"io"

	"github.com/npillmayer/textbuilder"
	"github.com/npillmayer/textbuilder/textsource"
	"golang.org/x/net/html"
)

// ErrNoNode is returned by InnerText for a nil node.
var ErrNoNode = errors.New("html: no node")

// InnerText creates a text source for the textual content of an HTML element
// and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that it cannot respect CSS styling suppressing the
// visibility of the node's descendents.
func InnerText(n *html.Node) (textsource.Source, error) {
	if n == nil {
		return textsource.Empty, ErrNoNode
	}
	b := textbuilder.New(nil, 0)
	collectText(n, b)
	return textsource.Owned(b.Units()), nil
}

func collectText(n *html.Node, b *textbuilder.Builder) {
	switch n.Type {
	case html.TextNode:
		b.AppendString(n.Data)
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TextFromHTML creates a text source from the textual content of an HTML
// fragment. It does no interpretation of layout and styling, but extracts
// the pure text.
func TextFromHTML(input io.Reader) (textsource.Source, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return textsource.Empty, err
	}
	b := textbuilder.New(nil, 0)
	for _, n := range nodes {
		collectText(n, b)
	}
	return textsource.Owned(b.Units()), nil
}
