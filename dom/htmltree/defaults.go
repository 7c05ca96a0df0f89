package htmltree

import (
	"github.com/npillmayer/domclone/dom/style"
	"github.com/npillmayer/domclone/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
)

// Initial values of properties which are not inherited. Every element starts
// with these.
var nonInherited = []style.Declaration{
	{Key: "position", Value: "static"},
	{Key: "top", Value: "auto"},
	{Key: "right", Value: "auto"},
	{Key: "bottom", Value: "auto"},
	{Key: "left", Value: "auto"},
	{Key: "width", Value: "auto"},
	{Key: "height", Value: "auto"},
	{Key: "min-width", Value: "0px"},
	{Key: "min-height", Value: "0px"},
	{Key: "max-width", Value: "none"},
	{Key: "max-height", Value: "none"},
	{Key: "margin-top", Value: "0px"},
	{Key: "margin-left", Value: "0px"},
	{Key: "margin-right", Value: "0px"},
	{Key: "margin-bottom", Value: "0px"},
	{Key: "padding-top", Value: "0px"},
	{Key: "padding-left", Value: "0px"},
	{Key: "padding-right", Value: "0px"},
	{Key: "padding-bottom", Value: "0px"},
	{Key: "border-top-width", Value: "0px"},
	{Key: "border-left-width", Value: "0px"},
	{Key: "border-right-width", Value: "0px"},
	{Key: "border-bottom-width", Value: "0px"},
	{Key: "border-top-style", Value: "none"},
	{Key: "border-left-style", Value: "none"},
	{Key: "border-right-style", Value: "none"},
	{Key: "border-bottom-style", Value: "none"},
	{Key: "background-color", Value: "rgba(0, 0, 0, 0)"},
	{Key: "float", Value: "none"},
	{Key: "overflow-x", Value: "visible"},
	{Key: "overflow-y", Value: "visible"},
	{Key: "opacity", Value: "1"},
	{Key: "z-index", Value: "auto"},
	{Key: "box-sizing", Value: "content-box"},
	{Key: "transform", Value: "none"},
	{Key: "transform-origin", Value: "50% 50%"},
}

// Initial values of inherited properties, applied at the root of a tree.
var inherited = []style.Declaration{
	{Key: "color", Value: "rgb(0, 0, 0)"},
	{Key: "direction", Value: "ltr"},
	{Key: "font-family", Value: "serif"},
	{Key: "font-size", Value: "16px"},
	{Key: "font-style", Value: "normal"},
	{Key: "font-weight", Value: "400"},
	{Key: "letter-spacing", Value: "normal"},
	{Key: "line-height", Value: "normal"},
	{Key: "text-align", Value: "start"},
	{Key: "visibility", Value: "visible"},
	{Key: "white-space", Value: "normal"},
	{Key: "word-spacing", Value: "0px"},
	{Key: "word-break", Value: "normal"},
	{Key: "overflow-wrap", Value: "normal"},
	{Key: "hyphens", Value: "manual"},
}

// initialValue returns the initial value of a property, or NullStyle for
// unknown properties.
func initialValue(key string) style.Property {
	for _, list := range [][]style.Declaration{nonInherited, inherited} {
		for _, d := range list {
			if d.Key == key {
				return d.Value
			}
		}
	}
	return style.NullStyle
}

// userAgentCSS holds user agent styles other than `display`.
const userAgentCSS = `
body { margin-top: 8px; margin-left: 8px; margin-right: 8px; margin-bottom: 8px }
h1 { font-size: 2em; font-weight: 700; margin-top: 0.67em; margin-bottom: 0.67em }
h2 { font-size: 1.5em; font-weight: 700; margin-top: 0.83em; margin-bottom: 0.83em }
h3 { font-size: 1.17em; font-weight: 700; margin-top: 1em; margin-bottom: 1em }
h4, h5, h6, b, strong, th { font-weight: 700 }
p, ul, ol { margin-top: 1em; margin-bottom: 1em }
i, em, cite, var { font-style: italic }
pre, code, kbd, samp, textarea { font-family: monospace }
small { font-size: 0.83em }
pre { white-space: pre }
textarea { white-space: pre-wrap; overflow-y: auto }
`

var userAgentSheet = douceuradapter.MustParse(userAgentCSS)

// displayFor returns the default `display` CSS property for an HTML element.
func displayFor(node *html.Node) style.Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "script", "style", "template", "title", "meta", "link", "base", "noscript":
		return "none"
	case "html", "address", "article", "aside", "blockquote", "body", "dd", "details",
		"dialog", "div", "dl", "dt", "fieldset", "figcaption", "figure", "footer", "form",
		"h1", "h2", "h3", "h4", "h5", "h6", "header", "hgroup", "hr", "main", "nav",
		"ol", "p", "pre", "section", "summary", "ul":
		return "block"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "tr":
		return "table-row"
	case "td", "th":
		return "table-cell"
	case "thead":
		return "table-header-group"
	case "tbody":
		return "table-row-group"
	case "tfoot":
		return "table-footer-group"
	case "slot":
		return "contents"
	case "img", "canvas", "video", "input", "select", "textarea", "button", "iframe":
		return "inline-block"
	case "a", "abbr", "b", "cite", "code", "em", "i", "kbd", "label", "q", "s",
		"samp", "small", "span", "strong", "sub", "sup", "u", "var":
		return "inline"
	}
	tracer().Debugf("unknown HTML element %s will be set to display: inline", node.Data)
	return "inline"
}
