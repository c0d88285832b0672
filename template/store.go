package template

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/amonks/focusstudio/internal/statefile"
	"github.com/rs/zerolog/log"
)

// SnapshotFile is the name of the template snapshot within the state dir.
const SnapshotFile = "templates.json"

// Store holds the template list and persists it as a JSON snapshot.
// Like the task store, persistence is best effort; a missing or
// unreadable snapshot falls back to the built-in defaults.
type Store struct {
	mu          sync.Mutex
	file        *statefile.File
	templates   []Template
	subscribers map[int]func()
	nextSubID   int
}

// Open loads the template snapshot from dir, falling back to
// Defaults on any load failure.
func Open(dir string) *Store {
	s := &Store{
		file:        statefile.New(filepath.Join(dir, SnapshotFile)),
		subscribers: map[int]func(){},
	}

	var templates []Template
	if err := s.file.Load(&templates); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", s.file.Path()).Msg("could not load templates, using defaults")
		}
		s.templates = Defaults()
		return s
	}
	s.templates = templates
	return s
}

// Templates returns a copy of the template list.
func (s *Store) Templates() []Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Template, len(s.templates))
	copy(out, s.templates)
	return out
}

// Find looks a template up by id, then falls back to the first
// name match. Names may collide; ids never do.
func (s *Store) Find(key string) (Template, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tpl := range s.templates {
		if tpl.ID == key {
			return tpl, true
		}
	}
	for _, tpl := range s.templates {
		if tpl.Name == key {
			return tpl, true
		}
	}
	return Template{}, false
}

// SetTemplates replaces the entire template list.
func (s *Store) SetTemplates(templates []Template) {
	s.mu.Lock()
	s.templates = make([]Template, len(templates))
	copy(s.templates, templates)
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Add appends a template to the list. Same-named templates coexist;
// each keeps its own id.
func (s *Store) Add(tpl Template) {
	s.mu.Lock()
	s.templates = append(s.templates, tpl)
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Subscribe registers fn to run after every mutation. The returned
// function unsubscribes.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *Store) persistLocked() {
	templates := s.templates
	if templates == nil {
		templates = []Template{}
	}
	if err := s.file.Save(templates); err != nil {
		log.Warn().Err(err).Str("path", s.file.Path()).Msg("could not save templates")
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
