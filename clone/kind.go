package clone

import (
	"github.com/npillmayer/domclone/dom"
	"golang.org/x/net/html"
)

// Kind is the category of a visual node with respect to cloning. Kinds form
// a closed set; every node is categorized once, by KindOf, and all further
// special treatment switches on the kind.
type Kind uint8

// Node categories.
const (
	KindOther       Kind = iota // comments, doctypes and other non-rendered nodes
	KindText                    // text node
	KindElement                 // generic element
	KindCanvas                  // canvas able to serialize its content
	KindVideo                   // video without poster image
	KindVideoPoster             // video with poster image
	KindTextInput               // input element
	KindTextarea                // textarea element
	KindSelect                  // select element
	KindSlot                    // slot element of a shadow tree
)

var kindNames = [...]string{
	KindOther:       "other",
	KindText:        "text",
	KindElement:     "element",
	KindCanvas:      "canvas",
	KindVideo:       "video",
	KindVideoPoster: "video-with-poster",
	KindTextInput:   "text-input",
	KindTextarea:    "textarea",
	KindSelect:      "select",
	KindSlot:        "slot",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// KindOf categorizes a visual node.
func KindOf(n dom.Node) Kind {
	switch n.NodeType() {
	case html.TextNode:
		return KindText
	case html.ElementNode:
	default:
		return KindOther
	}
	switch n.NodeName() {
	case "canvas":
		if _, ok := n.(dom.Canvas); ok {
			return KindCanvas
		}
	case "video":
		if poster, ok := dom.Attr(n, "poster"); ok && poster != "" {
			return KindVideoPoster
		}
		return KindVideo
	case "input":
		return KindTextInput
	case "textarea":
		return KindTextarea
	case "select":
		return KindSelect
	case "slot":
		return KindSlot
	}
	return KindElement
}

// isVideo is true for both kinds of video elements.
func (k Kind) isVideo() bool {
	return k == KindVideo || k == KindVideoPoster
}
