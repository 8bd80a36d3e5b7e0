package workbench

import "fmt"

// Ancestors returns every id reachable from id through ConnectedTo links,
// breadth-first, nearest first. id itself is excluded.
func (w *Workbench) Ancestors(id string) ([]string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if _, ok := w.byID[id]; !ok {
		return nil, fmt.Errorf("Ancestors(%q): %w", id, ErrUnknownMatrix)
	}
	return w.walkLocked(id, func(v string) []string { return w.byID[v].ConnectedTo }), nil
}

// Descendants returns every id derived from id, directly or transitively,
// breadth-first in insertion order. id itself is excluded.
func (w *Workbench) Descendants(id string) ([]string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if _, ok := w.byID[id]; !ok {
		return nil, fmt.Errorf("Descendants(%q): %w", id, ErrUnknownMatrix)
	}
	return w.walkLocked(id, func(v string) []string { return w.children[v] }), nil
}

// walkLocked runs a breadth-first search from start along next. A shared
// ancestor (diamond) is reported once. Caller holds mu.
func (w *Workbench) walkLocked(start string, next func(string) []string) []string {
	visited := map[string]bool{start: true}
	queue := []string{start}
	var order []string
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range next(v) {
			if visited[u] {
				continue
			}
			visited[u] = true
			order = append(order, u)
			queue = append(queue, u)
		}
	}
	return order
}
