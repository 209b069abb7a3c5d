package main

import (
	"fmt"
	"sort"
	"sync"
)

// Todo is a single item on the list.
type Todo struct {
	ID    string
	Title string
	Done  bool
}

// Store is an in-memory todo store.
type Store struct {
	mu     sync.RWMutex
	todos  map[string]*Todo
	nextID int
}

// NewStore creates a new store with sample data.
func NewStore() *Store {
	s := &Store{
		todos:  make(map[string]*Todo),
		nextID: 1,
	}

	s.Add("Buy groceries")
	s.Add("Review PR #123")
	s.Add("Write documentation")

	return s
}

// Add creates a new todo and returns its ID.
func (s *Store) Add(title string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("todo-%d", s.nextID)
	s.nextID++
	s.todos[id] = &Todo{ID: id, Title: title}
	return id
}

// Toggle flips a todo's done state.
func (s *Store) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok {
		return false
	}
	todo.Done = !todo.Done
	return true
}

// Delete removes a todo.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return false
	}
	delete(s.todos, id)
	return true
}

// List returns all todos sorted by ID.
func (s *Store) List() []Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Todo, 0, len(s.todos))
	for _, t := range s.todos {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
