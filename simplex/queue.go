package simplex

// A conflictQueue holds the identities of basic variables whose value may
// currently violate their bounds. It is a set+stack: insertion is O(1) and
// deduplicated via each Variable's queued flag (so a variable already
// pending is never enqueued twice), and dequeue order is LIFO.
//
// This plays the same role in this package that the teacher's priority
// queue (solver/queue.go) plays for decision-variable selection, but a
// plain LIFO stack is the right shape here, not a heap: spec.md's search
// step needs "some still-possibly-infeasible basic variable", picked in a
// fixed, reproducible order, and Bland's rule (not queue order) is what
// guarantees termination, so there is nothing to prioritize by.
type conflictQueue struct {
	vt      *varTable
	content []ident
}

func newConflictQueue(vt *varTable) *conflictQueue {
	return &conflictQueue{vt: vt}
}

// push enqueues id if it is not already pending.
func (q *conflictQueue) push(id ident) {
	v := q.vt.byID(id)
	if v.queued {
		return
	}
	v.queued = true
	q.content = append(q.content, id)
}

// pop removes and returns the most recently pushed identity. Panics if
// empty.
func (q *conflictQueue) pop() ident {
	if len(q.content) == 0 {
		panic("simplex: pop from empty conflict queue")
	}
	n := len(q.content) - 1
	id := q.content[n]
	q.content = q.content[:n]
	q.vt.byID(id).queued = false
	return id
}

// empty reports whether the queue has no pending entries.
func (q *conflictQueue) empty() bool {
	return len(q.content) == 0
}

// drain empties the queue, clearing the queued flag of every pending
// variable without processing them. Used by Undo: the entries queued
// since the level being undone necessarily refer to pre-undo state and
// must not be considered afterwards.
func (q *conflictQueue) drain() {
	for _, id := range q.content {
		q.vt.byID(id).queued = false
	}
	q.content = q.content[:0]
}
