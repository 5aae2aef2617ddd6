package handlers

import (
	"context"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/models"
)

type conversationState int

const (
	stateStartConsent conversationState = iota
	stateStartLocation
	stateLocationConfirm
	stateLocationInput
	stateTodoDetails
	stateTodoDueDate
	stateTodoDueTime
	stateTodoReminderChoice
	stateTodoReminderOffset
)

// todoDraft accumulates the answers of the todo creation flow. Nothing is
// persisted until the flow completes, so /cancel can always discard it.
type todoDraft struct {
	details   string
	dueDay    time.Time
	dueUTC    time.Time
	utcOffset int
}

// conversation is handed out to handlers running in separate goroutines, so
// every entry point serializes on mu before touching state or draft.
type conversation struct {
	mu    sync.Mutex
	state conversationState
	user  *models.User
	draft todoDraft
}

type conversationStore struct {
	mu    sync.RWMutex
	byUID map[int64]*conversation
}

func newConversationStore() *conversationStore {
	return &conversationStore{byUID: make(map[int64]*conversation)}
}

func (s *conversationStore) get(userID int64) *conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byUID[userID]
}

func (s *conversationStore) put(userID int64, conv *conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUID[userID] = conv
}

func (s *conversationStore) remove(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUID, userID)
}

// handleCancel aborts whatever flow the user is in. Provisional state is
// dropped; anything already persisted stays.
func (h *Handlers) handleCancel(msg *tgbotapi.Message) {
	if h.conversations.get(msg.From.ID) == nil {
		h.sendMessage(msg.Chat.ID, "Nothing to cancel.")
		return
	}
	h.conversations.remove(msg.From.ID)
	h.sendMessage(msg.Chat.ID, "Operation cancelled.")
}

func (h *Handlers) handleConversationMessage(ctx context.Context, conv *conversation, msg *tgbotapi.Message) {
	conv.mu.Lock()
	defer conv.mu.Unlock()

	switch conv.state {
	case stateStartConsent:
		h.handleStartConsent(ctx, conv, msg)
	case stateStartLocation:
		h.handleStartLocation(ctx, conv, msg)
	case stateLocationConfirm:
		h.handleLocationConfirm(conv, msg)
	case stateLocationInput:
		h.handleLocationInput(ctx, conv, msg)
	case stateTodoDetails:
		h.handleTodoDetails(conv, msg)
	case stateTodoDueTime:
		h.handleTodoDueTime(conv, msg)
	case stateTodoReminderChoice:
		h.handleTodoReminderChoice(ctx, conv, msg)
	case stateTodoReminderOffset:
		h.handleTodoReminderOffset(ctx, conv, msg)
	default:
		// stateTodoDueDate waits on a calendar callback, not a message.
		h.sendMessage(msg.Chat.ID, "Please use the buttons above, or /cancel to stop.")
	}
}
