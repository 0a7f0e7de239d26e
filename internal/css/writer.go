package css

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Cascade layers, rendered in this order
const (
	LayerBase       = "base"
	LayerComponents = "components"
	LayerUtilities  = "utilities"
)

// Layers lists the supported layers in cascade order
var Layers = []string{LayerBase, LayerComponents, LayerUtilities}

// Stylesheet collects generated rules per layer
type Stylesheet struct {
	Header string
	layers map[string][]Rule
}

// NewStylesheet creates an empty stylesheet with an optional header comment
func NewStylesheet(header string) *Stylesheet {
	return &Stylesheet{
		Header: header,
		layers: make(map[string][]Rule, len(Layers)),
	}
}

// Add appends rules to a layer
func (s *Stylesheet) Add(layer string, rules ...Rule) error {
	if !isLayer(layer) {
		return fmt.Errorf("unknown layer %q", layer)
	}
	s.layers[layer] = append(s.layers[layer], rules...)
	return nil
}

// Rules returns the rules of a layer
func (s *Stylesheet) Rules(layer string) []Rule {
	return s.layers[layer]
}

// Len returns the total number of rules
func (s *Stylesheet) Len() int {
	n := 0
	for _, rules := range s.layers {
		n += len(rules)
	}
	return n
}

// WriteTo renders the stylesheet. Empty layers are omitted.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	if s.Header != "" {
		fmt.Fprintf(bw, "/* %s */\n", strings.ReplaceAll(s.Header, "*/", "* /"))
	}

	first := true
	for _, layer := range Layers {
		rules := s.layers[layer]
		if len(rules) == 0 {
			continue
		}
		if !first || s.Header != "" {
			bw.WriteString("\n")
		}
		first = false

		fmt.Fprintf(bw, "@layer %s {\n", layer)
		for i, rule := range rules {
			if i > 0 {
				bw.WriteString("\n")
			}
			writeRule(bw, rule, "  ")
		}
		bw.WriteString("}\n")
	}

	if err := bw.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// String renders the stylesheet to a string
func (s *Stylesheet) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}

func writeRule(w *bufio.Writer, rule Rule, indent string) {
	for i, sel := range rule.Selectors {
		w.WriteString(indent)
		w.WriteString(sel)
		if i < len(rule.Selectors)-1 {
			w.WriteString(",\n")
		}
	}
	w.WriteString(" {\n")
	for _, d := range rule.Declarations {
		fmt.Fprintf(w, "%s  %s: %s;\n", indent, d.Property, d.Value)
	}
	w.WriteString(indent)
	w.WriteString("}\n")
}

func isLayer(name string) bool {
	for _, l := range Layers {
		if l == name {
			return true
		}
	}
	return false
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
