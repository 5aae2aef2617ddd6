package handlers

import (
	"context"
	"log"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/format"
)

// MessageReaction is the slice of a message_reaction update the handlers care
// about: which message, in which chat, and what the reaction became. The bot
// only ever talks in private chats, so the chat id identifies the user too.
type MessageReaction struct {
	ChatID    int64
	MessageID int
	NewEmojis []string
}

// HandleMessageReaction completes a todo when its due notification receives a
// thumbs-up. Reactions to anything else, other emojis, and reactions to todos
// resolved in the meantime are all ignored without a reply.
func (h *Handlers) HandleMessageReaction(ctx context.Context, reaction MessageReaction) {
	todoID, ok := h.pendings.Get(reaction.ChatID, reaction.MessageID)
	if !ok {
		return
	}

	approved := false
	for _, emoji := range reaction.NewEmojis {
		if emoji == format.ApproveEmoji {
			approved = true
			break
		}
	}
	if !approved {
		return
	}

	todo, err := h.repos.Todo.GetByID(ctx, todoID)
	if err != nil {
		log.Printf("Failed to retrieve todo %s: %v", todoID, err)
		return
	}
	if todo == nil || todo.Done {
		h.pendings.Remove(reaction.ChatID, reaction.MessageID)
		return
	}

	h.resolveTodo(ctx, reaction.ChatID, todoID, outcomeDone)
}
