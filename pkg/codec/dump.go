package codec

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Node is one element of a record's structural tree.
type Node struct {
	Name     string `json:"name"`
	Value    string `json:"value,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// Tree builds the structural tree of r in wire order.
func Tree(name string, r Record) Node {
	root := Node{Name: name}
	b := &treeBuilder{cur: &root}
	r.VisitFields(b)
	return root
}

// Dump writes the tree of r to w, one element per line, indenting nested
// records and list elements by two spaces per level.
func Dump(w io.Writer, name string, r Record) error {
	return writeNode(w, Tree(name, r), 0)
}

func writeNode(w io.Writer, n Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	var err error
	if n.Value != "" {
		_, err = fmt.Fprintf(w, "%s%s: %s\n", indent, n.Name, n.Value)
	} else {
		_, err = fmt.Fprintf(w, "%s%s\n", indent, n.Name)
	}
	if err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := writeNode(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

type treeBuilder struct {
	cur *Node
}

func (b *treeBuilder) leaf(name, value string) {
	b.cur.Children = append(b.cur.Children, Node{Name: name, Value: value})
}

func (b *treeBuilder) Uint8(name string, p *uint8)   { b.leaf(name, strconv.FormatUint(uint64(*p), 10)) }
func (b *treeBuilder) Uint16(name string, p *uint16) { b.leaf(name, strconv.FormatUint(uint64(*p), 10)) }
func (b *treeBuilder) Uint32(name string, p *uint32) { b.leaf(name, strconv.FormatUint(uint64(*p), 10)) }
func (b *treeBuilder) Uint64(name string, p *uint64) { b.leaf(name, strconv.FormatUint(*p, 10)) }
func (b *treeBuilder) Int8(name string, p *int8)     { b.leaf(name, strconv.FormatInt(int64(*p), 10)) }
func (b *treeBuilder) Int16(name string, p *int16)   { b.leaf(name, strconv.FormatInt(int64(*p), 10)) }
func (b *treeBuilder) Int32(name string, p *int32)   { b.leaf(name, strconv.FormatInt(int64(*p), 10)) }
func (b *treeBuilder) Int64(name string, p *int64)   { b.leaf(name, strconv.FormatInt(*p, 10)) }

func (b *treeBuilder) Float32(name string, p *float32) {
	b.leaf(name, strconv.FormatFloat(float64(*p), 'g', -1, 32))
}

func (b *treeBuilder) Float64(name string, p *float64) {
	b.leaf(name, strconv.FormatFloat(*p, 'g', -1, 64))
}

func (b *treeBuilder) Bytes(name string, p []byte) { b.leaf(name, hexOrEmpty(p)) }

func (b *treeBuilder) Record(name string, r Record) {
	parent := b.cur
	child := Node{Name: name}
	b.cur = &child
	r.VisitFields(b)
	b.cur = parent
	parent.Children = append(parent.Children, child)
}

func (b *treeBuilder) Count(name string, _ Width, n int) int {
	b.leaf(name, strconv.Itoa(n))
	return n
}

func (b *treeBuilder) Derived(name string, _ Width, value func() uint64) {
	b.leaf(name, strconv.FormatUint(value(), 10))
}

func (b *treeBuilder) Opaque(name string, p *[]byte, _ int, _ int) {
	b.leaf(name, hexOrEmpty(*p))
}

func (b *treeBuilder) List(name string, _ int, list ListAccess) {
	parent := b.cur
	node := Node{Name: name, Value: "[" + strconv.Itoa(list.Len()) + "]"}
	b.cur = &node
	for i := range list.Len() {
		b.Record("["+strconv.Itoa(i)+"]", list.At(i))
	}
	b.cur = parent
	parent.Children = append(parent.Children, node)
}

func hexOrEmpty(p []byte) string {
	if len(p) == 0 {
		return "-"
	}
	return hex.EncodeToString(p)
}
