package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/textbuilder"
	"golang.org/x/net/html"
)

func TestTextFromHTML(t *testing.T) {
	src, err := TextFromHTML(strings.NewReader(`<p>Hello <b>Wörld</b>!<script>x()</script></p><p>&lt;bye&gt;</p>`))
	if err != nil {
		t.Fatal(err)
	}
	b := textbuilder.New(src, 0)
	if b.String() != "Hello Wörld!<bye>" {
		t.Errorf("expected 'Hello Wörld!<bye>', have %q", b.String())
	}
}

func TestInnerText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body><div id="x">a<i>b</i></div>c</body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	var div *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "div" {
			div = n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)
	src, err := InnerText(div)
	if err != nil {
		t.Fatal(err)
	}
	if s := textbuilder.New(src, 0).String(); s != "ab" {
		t.Errorf("expected 'ab', have %q", s)
	}
	if _, err = InnerText(nil); !errors.Is(err, ErrNoNode) {
		t.Errorf("expected error for nil node, have %v", err)
	}
}
