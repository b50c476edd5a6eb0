package textcompress

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// BuildCodeTable constructs a Huffman code for the symbols in ft.
//
// The tree is built greedily: every symbol starts as a leaf in a minheap, and
// the two lightest nodes are repeatedly merged under a new internal node until
// one root remains.  Ties are broken deterministically (see nodeHeap.Less), so
// the same FrequencyTable always yields the same CodeTable.
//
// An empty FrequencyTable yields an empty CodeTable.  A FrequencyTable with a
// single symbol yields the 1-bit code "0" for that symbol, since an empty code
// could not represent any number of repetitions.
//
func BuildCodeTable(ft FrequencyTable) CodeTable {
	symbols := ft.Symbols()
	codes := make(map[Symbol]Code, len(symbols))

	switch len(symbols) {
	case 0:
		return CodeTable{codes: codes}
	case 1:
		codes[symbols[0]] = MakeCode(1, 0)
		return newCodeTable(codes)
	}

	root := buildTree(ft, symbols)
	assignCodes(codes, root)

	ct := newCodeTable(codes)
	log.Debugf("built code table: %d symbols, code sizes %d .. %d", ct.Len(), ct.MinSize(), ct.MaxSize())
	return ct
}

// treeNode is either a leaf (left == right == nil) holding a symbol, or an
// internal node owning exactly two children.
type treeNode struct {
	freq   uint64
	symbol Symbol
	left   *treeNode
	right  *treeNode

	// seq orders internal nodes by creation; it is 0 for leaves.
	seq uint32
}

func (n *treeNode) isLeaf() bool {
	return n.left == nil
}

// buildTree runs the greedy merge.  symbols must be sorted and hold at least
// two entries.
func buildTree(ft FrequencyTable, symbols []Symbol) *treeNode {
	// Step 1: build a minheap of leaves.

	h := nodeHeap{list: make([]*treeNode, 0, len(symbols))}
	for _, symbol := range symbols {
		h.list = append(h.list, &treeNode{freq: ft.Count(symbol), symbol: symbol})
	}
	h.Init()

	// Step 2: pop the two lightest nodes, join them under a new internal
	// node, and push that back.  The first node popped becomes the left
	// child.

	var nextSeq uint32
	for h.Len() > 1 {
		a := heap.Pop(&h).(*treeNode)
		b := heap.Pop(&h).(*treeNode)
		nextSeq++
		heap.Push(&h, &treeNode{
			freq:  addSaturating(a.freq, b.freq),
			left:  a,
			right: b,
			seq:   nextSeq,
		})
	}

	root := heap.Pop(&h).(*treeNode)
	assert.Assertf(!root.isLeaf(), "root of a %d-symbol tree is a leaf", len(symbols))
	return root
}

// assignCodes walks the tree with an explicit stack, since a skewed tree can
// be as deep as the alphabet is large.  Left edges append a 0 bit, right
// edges a 1 bit.
//
// stackItem.x tracks progress through each internal node:
//   x=0 → We just arrived at the node for the first time
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
func assignCodes(codes map[Symbol]Code, root *treeNode) {
	type stackItem struct {
		node *treeNode
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, 16)

	processChild := func(child *treeNode, code Code) {
		if child.isLeaf() {
			codes[child.symbol] = code
			return
		}
		assert.Assertf(child.right != nil, "internal node with a single child")
		stack = append(stack, stackItem{node: child, code: code})
	}

	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.left, top.code.Append(0))
		case 1:
			processChild(top.node.right, top.code.Append(1))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*treeNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

// Less orders by ascending frequency.  Among equal frequencies, leaves come
// before internal nodes, leaves are ordered by symbol, and internal nodes by
// creation order.
func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	aLeaf, bLeaf := a.isLeaf(), b.isLeaf()
	if aLeaf != bLeaf {
		return aLeaf
	}
	if aLeaf {
		return a.symbol < b.symbol
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*treeNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
