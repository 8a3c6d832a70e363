package gcl

// removeFromSlice returns xs with the first occurrence of target removed,
// preserving relative order of the remaining elements.
func removeFromSlice(xs []EdgeIndex, target EdgeIndex) []EdgeIndex {
	for i, x := range xs {
		if x == target {
			out := make([]EdgeIndex, 0, len(xs)-1)
			out = append(out, xs[:i]...)
			out = append(out, xs[i+1:]...)
			return out
		}
	}
	return xs
}

// AppendCommands appends src's commands to n's in place.
func (n *Node) AppendCommands(src *Node) {
	n.Commands = append(n.Commands, src.Commands...)
}
