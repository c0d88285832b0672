package task

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/amonks/focusstudio/internal/statefile"
	"github.com/rs/zerolog/log"
)

// SnapshotFile is the name of the task snapshot within the state dir.
const SnapshotFile = "tasks.json"

// Store holds the task list and persists it as a JSON snapshot after
// every mutation. Persistence is best effort: a missing or unreadable
// snapshot yields an empty store, and a failed write is logged but
// never surfaced to the mutation's caller.
type Store struct {
	mu          sync.Mutex
	file        *statefile.File
	tasks       []Task
	subscribers map[int]func()
	nextSubID   int
}

// Open loads the task snapshot from dir. Any load failure starts the
// store empty.
func Open(dir string) *Store {
	s := &Store{
		file:        statefile.New(filepath.Join(dir, SnapshotFile)),
		subscribers: map[int]func(){},
	}

	var tasks []Task
	if err := s.file.Load(&tasks); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", s.file.Path()).Msg("could not load tasks, starting empty")
		}
		return s
	}
	s.tasks = tasks
	return s
}

// Tasks returns a copy of the task list, newest first.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Add validates and prepends a new task, so the most recent addition
// leads the list.
func (s *Store) Add(t Task) error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if err := ValidateColumn(t.Status); err != nil {
		return err
	}
	if err := ValidatePriority(t.Priority); err != nil {
		return err
	}

	s.mu.Lock()
	s.tasks = append([]Task{t}, s.tasks...)
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
	return nil
}

// ReplaceAll swaps the entire task list in one operation.
func (s *Store) ReplaceAll(tasks []Task) {
	s.mu.Lock()
	s.tasks = make([]Task, len(tasks))
	copy(s.tasks, tasks)
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Clear removes every task.
func (s *Store) Clear() {
	s.ReplaceAll(nil)
}

// Patch describes a partial update. Nil fields keep their current
// values.
type Patch struct {
	Title    *string
	Notes    *string
	Priority *Priority
	Status   *Column
	Estimate *int
	Tags     *[]string
	Due      *string
}

// Update applies the patch to the task with the given id. Updating a
// task that does not exist is a no-op and returns ErrTaskNotFound.
func (s *Store) Update(id string, patch Patch) error {
	if patch.Title != nil {
		if err := ValidateTitle(*patch.Title); err != nil {
			return err
		}
	}
	if patch.Status != nil {
		if err := ValidateColumn(*patch.Status); err != nil {
			return err
		}
	}
	if patch.Priority != nil {
		if err := ValidatePriority(*patch.Priority); err != nil {
			return err
		}
	}
	if patch.Estimate != nil {
		if err := ValidateEstimate(*patch.Estimate); err != nil {
			return err
		}
	}

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrTaskNotFound
	}

	t := &s.tasks[idx]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Notes != nil {
		t.Notes = *patch.Notes
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Estimate != nil {
		t.Estimate = *patch.Estimate
	}
	if patch.Tags != nil {
		t.Tags = *patch.Tags
	}
	if patch.Due != nil {
		t.Due = *patch.Due
	}
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
	return nil
}

// Move places the task in a new column. Moving a task out of done
// does not flip its completion flag; only Toggle touches that.
func (s *Store) Move(id string, column Column) error {
	return s.Update(id, Patch{Status: &column})
}

// SetPriority assigns a priority verbatim, without checking it against
// the known levels. The chat command protocol relays whatever the
// assistant wrote; unknown values rank after P2 when sorting.
func (s *Store) SetPriority(id string, priority Priority) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrTaskNotFound
	}
	s.tasks[idx].Priority = priority
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
	return nil
}

// Toggle flips a task's completion. Completing a task stamps
// CompletedAt and moves it to the done column; un-completing clears
// the stamp and leaves the column where it is.
func (s *Store) Toggle(id string) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrTaskNotFound
	}

	t := &s.tasks[idx]
	if t.Completed {
		t.Completed = false
		t.CompletedAt = nil
	} else {
		t.Completed = true
		now := time.Now()
		t.CompletedAt = &now
		t.Status = ColumnDone
	}
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
	return nil
}

// Remove deletes the task with the given id.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrTaskNotFound
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
	return nil
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

func (s *Store) indexLocked(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persistLocked() {
	tasks := s.tasks
	if tasks == nil {
		tasks = []Task{}
	}
	if err := s.file.Save(tasks); err != nil {
		log.Warn().Err(err).Str("path", s.file.Path()).Msg("could not save tasks")
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
