package reader

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tsawler/vitae/model"
	"golang.org/x/net/html"
)

// HTMLSource reads HTML through the x/net/html tree parser. Heading tags
// h1 through h6 become bold synthetic lines, list items keep a bullet
// marker, <br> splits a line, and script/style/chrome elements are
// skipped. Anchor and mailto targets are appended after their link text
// so the contact extractors can see the address, not just the label.
type HTMLSource struct{}

// Fragments implements [Source].
func (s *HTMLSource) Fragments(data []byte) ([]model.TextFragment, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reader: parse html: %w", err)
	}

	var lines []syntheticLine
	var cur strings.Builder

	blank := func() {
		if n := len(lines); n > 0 && lines[n-1].text != "" {
			lines = append(lines, syntheticLine{})
		}
	}
	appendText := func(text string, bold, bullet bool) {
		first := true
		for _, part := range strings.Split(text, "\n") {
			part = strings.Join(strings.Fields(part), " ")
			if part == "" {
				continue
			}
			if first && !bullet {
				blank()
			}
			first = false
			if bullet {
				part = "- " + part
			}
			lines = append(lines, syntheticLine{text: part, bold: bold})
		}
	}
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		text := cur.String()
		cur.Reset()
		appendText(text, false, false)
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			cur.WriteString(n.Data)
			return

		case html.ElementNode:
			switch n.Data {
			case "script", "style", "nav", "footer", "header", "head", "noscript":
				return
			case "br":
				cur.WriteString("\n")
				return
			case "h1", "h2", "h3", "h4", "h5", "h6":
				flush()
				appendText(htmlText(n), true, false)
				return
			case "li":
				flush()
				text, nested := itemText(n)
				appendText(text, false, true)
				for _, sub := range nested {
					walk(sub)
				}
				return
			case "td", "th":
				flush()
				appendText(htmlText(n), false, false)
				return
			case "a":
				before := cur.Len()
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					walk(c)
				}
				if target := linkTarget(n); target != "" && !strings.Contains(cur.String()[before:], target) {
					cur.WriteString(" ")
					cur.WriteString(target)
				}
				return
			case "p", "div", "section", "article", "main", "aside",
				"ul", "ol", "table", "tr", "blockquote", "pre":
				flush()
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					walk(c)
				}
				flush()
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	flush()

	return fragmentsFromLines(lines), nil
}

// htmlText collects all text beneath n, turning <br> into a line break.
func htmlText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && n.Data == "br" {
			buf.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

// itemText returns a list item's own text and any nested lists, which
// the caller emits as bullet lines of their own.
func itemText(n *html.Node) (string, []*html.Node) {
	var buf strings.Builder
	var nested []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
				nested = append(nested, c)
				continue
			}
			if c.Type == html.TextNode {
				buf.WriteString(c.Data)
			}
			if c.Type == html.ElementNode && c.Data == "br" {
				buf.WriteString("\n")
			}
			walk(c)
		}
	}
	walk(n)
	return buf.String(), nested
}

// linkTarget extracts an http or mailto href, stripping the mailto scheme.
func linkTarget(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key != "href" {
			continue
		}
		href := strings.TrimSpace(attr.Val)
		switch {
		case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
			return href
		case strings.HasPrefix(href, "mailto:"):
			return strings.TrimPrefix(href, "mailto:")
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
