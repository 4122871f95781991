package meter

// tokenQueue is the classifier's work queue. Tokens are consumed from the
// front; numeral expansions are pushed back onto the front so they are
// resolved before any later token.
type tokenQueue struct {
	items []string
	head  int
}

func newTokenQueue(tokens []string) *tokenQueue {
	return &tokenQueue{items: append([]string(nil), tokens...)}
}

func (q *tokenQueue) Len() int {
	return len(q.items) - q.head
}

func (q *tokenQueue) PopFront() (string, bool) {
	if q.Len() == 0 {
		return "", false
	}
	token := q.items[q.head]
	q.items[q.head] = ""
	q.head++
	return token, true
}

// PushFront places tokens ahead of the queue, keeping their order.
func (q *tokenQueue) PushFront(tokens ...string) {
	if len(tokens) == 0 {
		return
	}
	if len(tokens) <= q.head {
		q.head -= len(tokens)
		copy(q.items[q.head:], tokens)
		return
	}
	rest := q.items[q.head:]
	merged := make([]string, 0, len(tokens)+len(rest))
	merged = append(merged, tokens...)
	merged = append(merged, rest...)
	q.items = merged
	q.head = 0
}
