package detect

import "github.com/matzehuels/linkviz/pkg/list"

// HasCycle runs a slow/fast pointer race over s.
//
// The slow pointer starts at the head and advances one link per step; the
// fast pointer starts at the head's successor and advances two. If they
// ever name the same node before the fast pointer runs out of successors,
// the list is cyclic. Links into nodes that are not live count as the end
// of the list, so HasCycle never dereferences Nil or a dead reference.
//
// HasCycle performs O(n) steps for any finite or cyclic store, including
// self-loops.
func HasCycle(s list.Store) bool {
	head := s.Head()
	if head == list.Nil || !s.Live(head) {
		return false
	}

	slow := head
	fast := list.Step(s, head)
	for fast != list.Nil {
		ahead := list.Step(s, fast)
		if ahead == list.Nil {
			return false
		}
		if slow == fast {
			return true
		}
		slow = list.Step(s, slow)
		fast = list.Step(s, ahead)
	}
	return false
}
