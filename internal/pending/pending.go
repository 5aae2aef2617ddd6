package pending

import (
	"sync"

	"github.com/google/uuid"
)

// Index tracks, per user, which sent notification message refers to which
// todo, so an emoji reaction on the message can resolve the todo. It is
// process-wide and transient: nothing here survives a restart, entries are
// recreated when due notifications fire again.
type Index struct {
	mu    sync.RWMutex
	users map[int64]map[int]uuid.UUID // telegram user id -> message id -> todo id
}

func NewIndex() *Index {
	return &Index{users: make(map[int64]map[int]uuid.UUID)}
}

// Put records that messageID sent to userID refers to todoID.
func (i *Index) Put(userID int64, messageID int, todoID uuid.UUID) {
	i.mu.Lock()
	defer i.mu.Unlock()

	messages, ok := i.users[userID]
	if !ok {
		messages = make(map[int]uuid.UUID)
		i.users[userID] = messages
	}
	messages[messageID] = todoID
}

// Get returns the todo id tracked for the given (user, message) pair.
func (i *Index) Get(userID int64, messageID int) (uuid.UUID, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	todoID, ok := i.users[userID][messageID]
	return todoID, ok
}

// Remove drops the entry for a single (user, message) pair.
func (i *Index) Remove(userID int64, messageID int) {
	i.mu.Lock()
	defer i.mu.Unlock()

	delete(i.users[userID], messageID)
}

// RemoveTodo drops every entry of the user that refers to todoID, whichever
// resolution path got there first. Returns how many entries were removed.
func (i *Index) RemoveTodo(userID int64, todoID uuid.UUID) int {
	i.mu.Lock()
	defer i.mu.Unlock()

	removed := 0
	for messageID, id := range i.users[userID] {
		if id == todoID {
			delete(i.users[userID], messageID)
			removed++
		}
	}
	return removed
}
