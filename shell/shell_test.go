package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/vcrobe/visiq/content"
)

var testOptions = Options{
	Stylesheet: "site.css",
	WASM:       "landing.wasm",
	WASMExec:   "wasm_exec.js",
}

func parse(t *testing.T) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, content.Default(), testOptions))
	require.True(t, strings.HasPrefix(buf.String(), "<!doctype html>"), buf.String()[:32])

	doc, err := html.Parse(&buf)
	require.NoError(t, err)
	return doc
}

func find(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return out
}

func element(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == tag }
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestDocument_Head(t *testing.T) {
	doc := parse(t)

	htmlEl := find(doc, element("html"))
	require.Len(t, htmlEl, 1)
	assert.Equal(t, "ja", attr(htmlEl[0], "lang"))

	titles := find(doc, element("title"))
	require.Len(t, titles, 1)
	assert.Equal(t, content.Default().Title, titles[0].FirstChild.Data)

	var stylesheets []string
	for _, l := range find(doc, element("link")) {
		if attr(l, "rel") == "stylesheet" {
			stylesheets = append(stylesheets, attr(l, "href"))
		}
	}
	assert.Equal(t, []string{FontHref, "site.css"}, stylesheets)
}

func TestDocument_Body(t *testing.T) {
	doc := parse(t)

	mounts := find(doc, func(n *html.Node) bool { return attr(n, "id") == MountID })
	require.Len(t, mounts, 1)
	assert.Nil(t, mounts[0].FirstChild, "the runtime owns #app")

	scripts := find(doc, element("script"))
	require.Len(t, scripts, 2)
	assert.Equal(t, "wasm_exec.js", attr(scripts[0], "src"))
	assert.Contains(t, scripts[1].FirstChild.Data, `fetch("landing.wasm")`)
}

func TestDocument_NoscriptFallback(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, content.Default(), testOptions))
	out := buf.String()

	start := strings.Index(out, "<noscript>")
	end := strings.Index(out, "</noscript>")
	require.True(t, start >= 0 && end > start)
	fallback := out[start:end]

	assert.Contains(t, fallback, `data-reveal="static"`)
	assert.NotContains(t, fallback, `data-reveal="hidden"`)
	assert.Contains(t, fallback, `id="cta"`)
	assert.Contains(t, fallback, "mailto:info@visiq.academy")
}
