package engine

// DefaultDedupWindow is the number of recent correlation ids remembered.
const DefaultDedupWindow = 64

// window remembers the last n ids in insertion order.
type window struct {
	ids  []string
	next int
	seen map[string]struct{}
}

func newWindow(n int) *window {
	if n <= 0 {
		n = DefaultDedupWindow
	}
	return &window{ids: make([]string, n), seen: make(map[string]struct{}, n)}
}

func (w *window) contains(id string) bool {
	if id == "" {
		return false
	}
	_, ok := w.seen[id]
	return ok
}

func (w *window) add(id string) {
	if id == "" || w.contains(id) {
		return
	}
	if old := w.ids[w.next]; old != "" {
		delete(w.seen, old)
	}
	w.ids[w.next] = id
	w.seen[id] = struct{}{}
	w.next = (w.next + 1) % len(w.ids)
}
