/*
Package clonedbg implements helpers to debug cloned trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package clonedbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/domclone/clone"
	"github.com/npillmayer/domclone/dom/style"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Print returns an indented text representation of a cloned tree, with
// the style of each element.
func Print(root *clone.Node) string {
	if root == nil {
		return "<nil>\n"
	}
	t := treeprint.NewWithRoot(label(root))
	printChildren(root, t)
	return t.String()
}

func printChildren(n *clone.Node, t treeprint.Tree) {
	for _, ch := range n.ChildNodes() {
		if len(ch.ChildNodes()) == 0 {
			t.AddNode(label(ch))
			continue
		}
		printChildren(ch, t.AddBranch(label(ch)))
	}
}

func label(n *clone.Node) string {
	switch n.NodeType() {
	case html.TextNode:
		return fmt.Sprintf("%q", shorten(n.Data(), 30))
	case html.ElementNode:
		s := n.String()
		if n.Replaced() {
			s += " (replaced)"
		}
		if n.Style().Len() > 0 {
			s += " " + n.Style().String()
		}
		return s
	}
	return n.Tag()
}

func shorten(s string, max int) string {
	if len(s) > max {
		return s[:max] + "…"
	}
	return s
}

// DefaultStyleKeys are the style properties included in GraphViz diagrams if
// the client does not provide a list.
var DefaultStyleKeys = []string{
	"display",
	"position",
	"top",
	"overflow-y",
	"font-size",
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	StyleKeys []string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	StyleTmpl *template.Template
	SEdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a cloned tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the tree, a Writer, and an optional list of style properties.
// The diagram will include the values of these properties for every
// element. If the client does not provide a list, DefaultStyleKeys
// will be used.
func ToGraphViz(root *clone.Node, w io.Writer, styleKeys []string) error {
	tmpl, err := template.New("clone").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("clonenode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(cloneNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("cloneedge").Parse(cloneEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("style").Parse(styleTmpl))
	gparams.SEdgeTmpl = template.Must(template.New("styleedge").Parse(styleEdgeTmpl))
	gparams.StyleKeys = styleKeys
	if styleKeys == nil {
		gparams.StyleKeys = DefaultStyleKeys
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*clone.Node]string, 4096)
	if root != nil {
		if err = nodes(root, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a cloned node and a testing.T, it will
// create a Graphiviz image of the tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *clone.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "clone.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing clone digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing clone tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *clone.Node
	Name string
}

func nodes(n *clone.Node, w io.Writer, dict map[*clone.Node]string, gparams *graphParamsType) error {
	if err := cloneNode(n, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range n.ChildNodes() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := cloneEdge(n, ch, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func cloneNode(n *clone.Node, w io.Writer, dict map[*clone.Node]string, gparams *graphParamsType) error {
	name := dict[n]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[n] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		return err
	}
	return cloneStyles(n, name, w, gparams)
}

type styleRecord struct {
	Name       string
	Properties []style.Declaration
}

func cloneStyles(n *clone.Node, name string, w io.Writer, gparams *graphParamsType) error {
	if !n.IsElement() {
		return nil
	}
	rec := styleRecord{Name: name}
	for _, key := range gparams.StyleKeys {
		if decl, ok := n.Style().Declaration(key); ok {
			rec.Properties = append(rec.Properties, decl)
		}
	}
	if err := gparams.StyleTmpl.Execute(w, rec); err != nil {
		return err
	}
	return gparams.SEdgeTmpl.Execute(w, rec)
}

type edge struct {
	N1, N2 node
}

func cloneEdge(n1 *clone.Node, n2 *clone.Node, w io.Writer, dict map[*clone.Node]string,
	gparams *graphParamsType) error {
	//
	e := edge{node{n1, dict[n1]}, node{n2, dict[n2]}}
	return gparams.EdgeTmpl.Execute(w, e)
}

func shortText(n *clone.Node) string {
	s := "\"\\\""
	if len(n.Data()) > 10 {
		s += n.Data()[:10] + "...\\\"\""
	} else {
		s += n.Data() + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const cloneNodeTmpl = `{{ if eq .N.Tag "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if .N.Replaced }}
{{ .Name }}	[ label={{ printf "%q" .N.Tag }} shape=ellipse style=filled fillcolor=gold ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.Tag }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleTmpl = `{{ .Name }}_style [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const cloneEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const styleEdgeTmpl = `{{ .Name }} -> {{ .Name }}_style [dir=none weight=1 style="dashed"] ;
`
