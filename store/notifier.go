package store

import "sync"

// Notifier fans table-change events out to watchers. Views own their
// TableWatch explicitly; there is no process-wide reactive state.
type Notifier struct {
	mu      sync.Mutex
	watches map[*TableWatch]struct{}
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{watches: make(map[*TableWatch]struct{})}
}

// Subscribe registers a watch on the given tables. The returned watch must
// be closed when the view tears down.
func (n *Notifier) Subscribe(tables ...string) *TableWatch {
	w := &TableWatch{
		notifier: n,
		tables:   make(map[string]struct{}, len(tables)),
		// Capacity 1: pending signals coalesce, a re-run always observes
		// every write that landed before it was triggered.
		ch: make(chan struct{}, 1),
	}
	for _, t := range tables {
		w.tables[t] = struct{}{}
	}

	n.mu.Lock()
	n.watches[w] = struct{}{}
	n.mu.Unlock()
	return w
}

// Publish signals every watch that depends on one of the touched tables.
// It never blocks: a watch that already has a pending signal absorbs the
// new one.
func (n *Notifier) Publish(tables ...string) {
	if len(tables) == 0 {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for w := range n.watches {
		for _, t := range tables {
			if _, ok := w.tables[t]; ok {
				select {
				case w.ch <- struct{}{}:
				default:
				}
				break
			}
		}
	}
}

func (n *Notifier) remove(w *TableWatch) {
	n.mu.Lock()
	delete(n.watches, w)
	n.mu.Unlock()
}

// TableWatch is a single view's registration with the Notifier.
type TableWatch struct {
	notifier  *Notifier
	tables    map[string]struct{}
	ch        chan struct{}
	closeOnce sync.Once
}

// Changes delivers one signal per batch of writes touching a watched table.
func (w *TableWatch) Changes() <-chan struct{} {
	return w.ch
}

// Close deregisters the watch. It is synchronous and idempotent; no signal
// is delivered after it returns.
func (w *TableWatch) Close() {
	w.closeOnce.Do(func() {
		w.notifier.remove(w)
	})
}
