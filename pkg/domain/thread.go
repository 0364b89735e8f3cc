package domain

// CommentNode is a comment together with the replies that point at it.
type CommentNode struct {
	Comment Comment
	Replies []CommentNode
}

// ThreadComments arranges comments into reply trees, keeping the input order
// among siblings. A comment whose ReplyID is unknown, points at itself, or
// sits on a reply cycle is promoted to a root so nothing is dropped.
func ThreadComments(cs []Comment) []CommentNode {
	byID := make(map[int64]bool, len(cs))
	for _, c := range cs {
		byID[c.ID] = true
	}

	children := make(map[int64][]int)
	var roots []int
	for i, c := range cs {
		if c.ReplyID == nil || *c.ReplyID == c.ID || !byID[*c.ReplyID] {
			roots = append(roots, i)
			continue
		}
		children[*c.ReplyID] = append(children[*c.ReplyID], i)
	}

	visited := make([]bool, len(cs))
	var build func(i int) CommentNode
	build = func(i int) CommentNode {
		visited[i] = true
		node := CommentNode{Comment: cs[i]}
		for _, j := range children[cs[i].ID] {
			if !visited[j] {
				node.Replies = append(node.Replies, build(j))
			}
		}
		return node
	}

	out := make([]CommentNode, 0, len(roots))
	for _, i := range roots {
		out = append(out, build(i))
	}
	for i := range cs {
		if !visited[i] {
			out = append(out, build(i))
		}
	}
	return out
}
