package project

import (
	"io/fs"
	"sort"
	"time"
)

// Event reports what the watcher did with one unit. Err is the build or
// removal error, if any.
type Event struct {
	Unit    *Unit
	Removed bool
	Err     error
}

// Watcher polls the project's sources and rebuilds units whose modification
// time moved forward. Outputs of deleted sources are removed.
type Watcher struct {
	project      *Project
	stopCh       chan struct{}
	doneCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time
	units        map[string]*Unit
	onEvent      func(Event)
}

type WatcherOption func(*Watcher)

func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.pollInterval = d
	}
}

// WithEventHandler registers fn to be called after every rebuild or removal,
// from the watcher's goroutine.
func WithEventHandler(fn func(Event)) WatcherOption {
	return func(w *Watcher) {
		w.onEvent = fn
	}
}

func NewWatcher(p *Project, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		project:      p,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
		pollInterval: 1 * time.Second,
		modTimes:     make(map[string]time.Time),
		units:        make(map[string]*Unit),
		onEvent:      func(Event) {},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Watcher) Start() {
	go w.run()
}

// Stop ends polling and waits for an in-flight scan to finish.
func (w *Watcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *Watcher) scan() {
	log := w.project.log
	current := make(map[string]bool)

	err := w.project.walk(func(path string, info fs.FileInfo) error {
		current[path] = true

		lastMod, known := w.modTimes[path]
		if known && !info.ModTime().After(lastMod) {
			return nil
		}
		w.modTimes[path] = info.ModTime()

		u, err := w.project.unitFor(path)
		if err != nil {
			return nil
		}
		w.units[path] = u
		log.Infof("building %s", u.Name)
		w.onEvent(Event{Unit: u, Err: w.project.BuildUnit(u)})
		return nil
	})
	if err != nil {
		log.Errorf("scan %s: %s", w.project.SrcDir, err)
		return
	}

	for path := range w.modTimes {
		if current[path] {
			continue
		}
		u := w.units[path]
		delete(w.modTimes, path)
		delete(w.units, path)
		log.Infof("removing output of %s", u.Name)
		w.onEvent(Event{Unit: u, Removed: true, Err: w.project.RemoveOutput(u)})
	}

	w.project.Units = w.sortedUnits()
}

func (w *Watcher) sortedUnits() []*Unit {
	units := make([]*Unit, 0, len(w.units))
	for _, u := range w.units {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool {
		return units[i].Name < units[j].Name
	})
	return units
}
