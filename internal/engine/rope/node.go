package rope

import "strings"

// Tree structure constants.
const (
	// MaxChildren is the maximum children per internal node before splitting.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// node is a node in the rope tree.
// Leaf nodes (height == 0) hold text chunks; internal nodes hold children.
type node struct {
	height  uint8
	summary Summary

	// Internal node fields (height > 0)
	children       []*node
	childSummaries []Summary

	// Leaf node fields (height == 0)
	chunks []Chunk
}

func newLeafNode() *node {
	return &node{
		height: 0,
		chunks: make([]Chunk, 0, MaxChunksPerLeaf),
	}
}

func newLeafNodeWithChunks(chunks []Chunk) *node {
	n := &node{
		height: 0,
		chunks: chunks,
	}
	n.recomputeSummary()
	return n
}

func newInternalNode(children []*node) *node {
	if len(children) == 0 {
		return newLeafNode()
	}

	height := children[0].height + 1
	summaries := make([]Summary, len(children))
	var total Summary

	for i, child := range children {
		summaries[i] = child.summary
		total = total.Add(child.summary)
	}

	return &node{
		height:         height,
		summary:        total,
		children:       children,
		childSummaries: summaries,
	}
}

func (n *node) isLeaf() bool {
	return n.height == 0
}

// runes returns the rune length of text in this subtree.
func (n *node) runes() int {
	return n.summary.Runes
}

func (n *node) recomputeSummary() {
	n.summary = Summary{}
	if n.isLeaf() {
		for _, chunk := range n.chunks {
			n.summary = n.summary.Add(chunk.Summary())
		}
		return
	}
	n.childSummaries = make([]Summary, len(n.children))
	for i, child := range n.children {
		n.childSummaries[i] = child.summary
		n.summary = n.summary.Add(child.summary)
	}
}

// appendTo appends all text in this subtree to the builder.
func (n *node) appendTo(sb *strings.Builder) {
	if n.isLeaf() {
		for _, chunk := range n.chunks {
			sb.WriteString(chunk.String())
		}
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// textInRange extracts text in the rune range [start, end).
func (n *node) textInRange(start, end int) string {
	if start >= end || start >= n.runes() {
		return ""
	}
	if end > n.runes() {
		end = n.runes()
	}

	var sb strings.Builder
	n.appendRange(&sb, start, end)
	return sb.String()
}

// appendRange appends text in the rune range [start, end) to the builder.
func (n *node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}

	if n.isLeaf() {
		offset := 0
		for _, chunk := range n.chunks {
			chunkEnd := offset + chunk.Runes()
			if chunkEnd <= start {
				offset = chunkEnd
				continue
			}
			if offset >= end {
				break
			}

			sliceStart := 0
			if start > offset {
				sliceStart = start - offset
			}
			sliceEnd := chunk.Runes()
			if end < chunkEnd {
				sliceEnd = end - offset
			}

			sb.WriteString(chunk.slice(sliceStart, sliceEnd))
			offset = chunkEnd
		}
		return
	}

	offset := 0
	for i, child := range n.children {
		childLen := n.childSummaries[i].Runes
		childEnd := offset + childLen
		if childEnd <= start {
			offset = childEnd
			continue
		}
		if offset >= end {
			break
		}

		childStart := 0
		if start > offset {
			childStart = start - offset
		}
		childEndAdj := childLen
		if end < childEnd {
			childEndAdj = end - offset
		}

		child.appendRange(sb, childStart, childEndAdj)
		offset = childEnd
	}
}

// runeAt returns the rune at the given rune offset within this subtree.
func (n *node) runeAt(offset int) rune {
	for !n.isLeaf() {
		i, rel := n.findChildByOffset(offset)
		n = n.children[i]
		offset = rel
	}
	for _, chunk := range n.chunks {
		if offset < chunk.Runes() {
			for _, r := range chunk.String() {
				if offset == 0 {
					return r
				}
				offset--
			}
		}
		offset -= chunk.Runes()
	}
	return 0
}

// offsetOfLine returns the rune offset where the given line begins.
// Line 0 begins at offset 0; line k begins just past the k-th newline.
func (n *node) offsetOfLine(line int) int {
	if line <= 0 {
		return 0
	}

	offset := 0
	for !n.isLeaf() {
		descended := false
		for i, sum := range n.childSummaries {
			if sum.Lines >= line {
				n = n.children[i]
				descended = true
				break
			}
			line -= sum.Lines
			offset += sum.Runes
		}
		if !descended {
			return n.summary.Runes + offset
		}
	}

	for _, chunk := range n.chunks {
		if chunk.Summary().Lines >= line {
			rel, _ := runesBeforeNthNewline(chunk.String(), line)
			return offset + rel
		}
		line -= chunk.Summary().Lines
		offset += chunk.Runes()
	}
	return offset
}

// lineOfOffset returns the number of newlines among the first offset runes,
// which is the zero-based line containing that offset.
func (n *node) lineOfOffset(offset int) int {
	line := 0
	for !n.isLeaf() {
		i, rel := n.findChildByOffset(offset)
		for j := 0; j < i; j++ {
			line += n.childSummaries[j].Lines
		}
		n = n.children[i]
		offset = rel
	}
	for _, chunk := range n.chunks {
		if offset < chunk.Runes() {
			return line + newlinesInPrefix(chunk.String(), offset)
		}
		line += chunk.Summary().Lines
		offset -= chunk.Runes()
	}
	return line
}

// split splits the node at the given rune offset.
// Left contains [0, offset), right contains [offset, end).
func (n *node) split(offset int) (*node, *node) {
	if offset <= 0 {
		return newLeafNode(), n.clone()
	}
	if offset >= n.runes() {
		return n.clone(), newLeafNode()
	}
	if n.isLeaf() {
		return n.splitLeaf(offset)
	}
	return n.splitInternal(offset)
}

func (n *node) splitLeaf(offset int) (*node, *node) {
	var leftChunks, rightChunks []Chunk
	current := 0

	for _, chunk := range n.chunks {
		chunkLen := chunk.Runes()
		switch {
		case current+chunkLen <= offset:
			leftChunks = append(leftChunks, chunk)
		case current >= offset:
			rightChunks = append(rightChunks, chunk)
		default:
			left, right := chunk.Split(offset - current)
			if !left.IsEmpty() {
				leftChunks = append(leftChunks, left)
			}
			if !right.IsEmpty() {
				rightChunks = append(rightChunks, right)
			}
		}
		current += chunkLen
	}

	return newLeafNodeWithChunks(leftChunks), newLeafNodeWithChunks(rightChunks)
}

func (n *node) splitInternal(offset int) (*node, *node) {
	var leftChildren, rightChildren []*node
	current := 0

	for i, child := range n.children {
		childLen := n.childSummaries[i].Runes
		switch {
		case current+childLen <= offset:
			leftChildren = append(leftChildren, child)
		case current >= offset:
			rightChildren = append(rightChildren, child)
		default:
			leftChild, rightChild := child.split(offset - current)
			if leftChild.runes() > 0 {
				leftChildren = append(leftChildren, leftChild)
			}
			if rightChild.runes() > 0 {
				rightChildren = append(rightChildren, rightChild)
			}
		}
		current += childLen
	}

	return buildNodeFromChildren(leftChildren), buildNodeFromChildren(rightChildren)
}

func (n *node) clone() *node {
	if n.isLeaf() {
		chunks := make([]Chunk, len(n.chunks))
		copy(chunks, n.chunks)
		return &node{
			height:  0,
			summary: n.summary,
			chunks:  chunks,
		}
	}

	children := make([]*node, len(n.children))
	copy(children, n.children)
	summaries := make([]Summary, len(n.childSummaries))
	copy(summaries, n.childSummaries)

	return &node{
		height:         n.height,
		summary:        n.summary,
		children:       children,
		childSummaries: summaries,
	}
}

// buildNodeFromChildren creates a balanced tree from child nodes of one height.
func buildNodeFromChildren(children []*node) *node {
	if len(children) == 0 {
		return newLeafNode()
	}
	if len(children) == 1 {
		return children[0]
	}
	if len(children) <= MaxChildren {
		return newInternalNode(children)
	}

	var parents []*node
	for i := 0; i < len(children); i += MaxChildren {
		end := i + MaxChildren
		if end > len(children) {
			end = len(children)
		}
		parents = append(parents, newInternalNode(children[i:end]))
	}
	return buildNodeFromChildren(parents)
}

// concatNodes concatenates two subtrees.
func concatNodes(left, right *node) *node {
	if left == nil || left.runes() == 0 {
		if right == nil {
			return newLeafNode()
		}
		return right
	}
	if right == nil || right.runes() == 0 {
		return left
	}

	if left.isLeaf() && right.isLeaf() {
		return concatLeaves(left, right)
	}

	for left.height < right.height {
		left = newInternalNode([]*node{left})
	}
	for right.height < left.height {
		right = newInternalNode([]*node{right})
	}

	return mergeNodes(left, right)
}

func concatLeaves(left, right *node) *node {
	total := len(left.chunks) + len(right.chunks)
	if total <= MaxChunksPerLeaf {
		chunks := make([]Chunk, 0, total)
		chunks = append(chunks, left.chunks...)
		chunks = append(chunks, right.chunks...)
		return newLeafNodeWithChunks(chunks)
	}
	return newInternalNode([]*node{left.clone(), right.clone()})
}

func mergeNodes(left, right *node) *node {
	if left.isLeaf() {
		return concatLeaves(left, right)
	}

	all := make([]*node, 0, len(left.children)+len(right.children))
	all = append(all, left.children...)
	all = append(all, right.children...)

	if len(all) <= MaxChildren {
		return newInternalNode(all)
	}
	return buildNodeFromChildren(all)
}

// findChildByOffset finds the child containing the given rune offset.
// Returns the child index and the offset within that child.
func (n *node) findChildByOffset(offset int) (int, int) {
	if n.isLeaf() {
		return -1, 0
	}

	current := 0
	for i, summary := range n.childSummaries {
		if current+summary.Runes > offset {
			return i, offset - current
		}
		current += summary.Runes
	}

	last := len(n.children) - 1
	return last, offset - (n.summary.Runes - n.childSummaries[last].Runes)
}
