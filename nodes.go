package termcalc

import (
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. Nodes are
// immutable once parsed; evaluating a tree never modifies it.
type Node struct {
	kind nodeKind

	val  float64
	name string
	fn   Func

	left  *Node
	right *Node
	args  []*Node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // literal; val holds the value
	nodeConst // named constant; name resolved during evaluation

	nodeNeg // negate left

	nodeAdd  // left + right
	nodeSub  // left - right
	nodeMul  // left * right
	nodeDiv  // left / right
	nodeMod  // left % right
	nodePow  // left ^ right
	nodeRoot // right-th root of left

	nodeCall // call fn (nil if the name is unrecognized) on args
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeConst:
		return "Const"
	case nodeNeg:
		return "Neg"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodeMod:
		return "Mod"
	case nodePow:
		return "Pow"
	case nodeRoot:
		return "Root"
	case nodeCall:
		return "Call"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// opText is the source spelling of a binary operator node kind.
func opText(k nodeKind) string {
	switch k {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodeMod:
		return "%"
	case nodePow:
		return "^"
	case nodeRoot:
		return "r"
	default:
		panic("termcalc: no operator for node kind " + k.String())
	}
}

// String creates a canonical representation of the parsed expression, with
// every compound term parenthesized. Parsing the result yields an equivalent
// tree.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case nodeConst:
		b.WriteString(n.name)
	case nodeNeg:
		b.WriteString("(-")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow, nodeRoot:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(opText(n.kind))
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		for i, a := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b)
		}
		b.WriteByte(')')
	default:
		panic("termcalc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
