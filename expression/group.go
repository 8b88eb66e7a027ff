package expression

import (
	"fmt"
	"strings"
)

// Group is a capture group of a match. Start and End are byte offsets into the
// matched text and are -1 when the group did not take part in the match.
type Group struct {
	Start    int
	End      int
	Children []*Group
	text     string
}

// Text returns the captured text and whether the group participated.
func (g *Group) Text() (string, bool) {
	return g.text, g.Participated()
}

// Participated reports whether the group captured anything, possibly empty.
func (g *Group) Participated() bool { return g.Start >= 0 }

// groupNode mirrors the nesting of the capturing groups of a pattern.
type groupNode struct {
	source   string
	children []*groupNode
}

func (n *groupNode) count() int {
	total := 1
	for _, c := range n.children {
		total += c.count()
	}

	return total
}

// build turns submatch indexes into a Group tree. Capture numbers follow the
// order of opening parentheses, which is a pre-order walk of the nodes.
func (n *groupNode) build(text string, loc []int, next *int) *Group {
	idx := *next
	*next++

	g := &Group{Start: loc[2*idx], End: loc[2*idx+1]}
	if g.Start >= 0 {
		g.text = text[g.Start:g.End]
	}

	for _, c := range n.children {
		g.Children = append(g.Children, c.build(text, loc, next))
	}

	return g
}

type groupFrame struct {
	node      *groupNode
	capturing bool
	start     int
}

// parseGroups scans a Go regexp source for its capturing groups. Escapes,
// \Q...\E quoting and character classes are skipped; non-capturing and flag
// groups are transparent, their capturing children belong to the enclosing
// group.
func parseGroups(src string) (*groupNode, error) {
	root := &groupNode{source: src}
	stack := []*groupFrame{{node: root, capturing: true}}

	for i := 0; i < len(src); {
		switch src[i] {
		case '\\':
			if strings.HasPrefix(src[i:], `\Q`) {
				end := strings.Index(src[i+2:], `\E`)
				if end < 0 {
					i = len(src)
				} else {
					i += end + 4
				}

				continue
			}

			i += 2

		case '[':
			i = skipClass(src, i)

		case '(':
			capturing, start := groupOpening(src, i)
			stack = append(stack, &groupFrame{node: &groupNode{}, capturing: capturing, start: start})
			i = start

		case ')':
			if len(stack) == 1 {
				return nil, fmt.Errorf("unbalanced ')' at %d in /%s/", i, src)
			}

			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1].node

			if f.capturing {
				f.node.source = src[f.start:i]
				parent.children = append(parent.children, f.node)
			} else {
				parent.children = append(parent.children, f.node.children...)
			}

			i++

		default:
			i++
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("missing ')' in /%s/", src)
	}

	return root, nil
}

// groupOpening classifies the group opened at src[i] and returns where its
// content starts.
func groupOpening(src string, i int) (bool, int) {
	rest := src[i+1:]

	switch {
	case !strings.HasPrefix(rest, "?"):
		return true, i + 1
	case strings.HasPrefix(rest, "?P<"), strings.HasPrefix(rest, "?<") &&
		!strings.HasPrefix(rest, "?<=") && !strings.HasPrefix(rest, "?<!"):
		if end := strings.IndexByte(rest, '>'); end >= 0 {
			return true, i + 1 + end + 1
		}

		return true, len(src)
	}

	// (?:...), (?flags:...) or (?flags)
	for j := i + 2; j < len(src); j++ {
		switch src[j] {
		case ':':
			return false, j + 1
		case ')':
			return false, j
		}
	}

	return false, len(src)
}

// skipClass returns the index just past the character class opened at src[i].
func skipClass(src string, i int) int {
	j := i + 1
	if j < len(src) && src[j] == '^' {
		j++
	}

	if j < len(src) && src[j] == ']' {
		j++
	}

	for j < len(src) {
		switch {
		case src[j] == '\\':
			j += 2
		case strings.HasPrefix(src[j:], "[:"):
			if end := strings.Index(src[j+2:], ":]"); end >= 0 {
				j += end + 4
			} else {
				j++
			}
		case src[j] == ']':
			return j + 1
		default:
			j++
		}
	}

	return len(src)
}
