package handler

import (
	"strconv"

	"flashvocab/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAdmin opens the dashboard or asks for the passcode
func (h *Handler) handleAdmin(c tele.Context) error {
	chatID := c.Chat().ID
	if c.Callback() != nil {
		_ = c.Respond()
	}

	if !h.auth.IsAuthorized(chatID) {
		h.SetState(chatID, &domain.StateData{State: domain.StateWaitingPasscode})
		return h.editOrSend(c, passcodeText, cancelMarkup())
	}

	h.ResetState(chatID)
	return h.editOrSend(c, adminMenuText(h.store.Len()), adminMenuMarkup())
}

// handleAdminMenu returns to the dashboard from any admin screen
func (h *Handler) handleAdminMenu(c tele.Context) error {
	h.ResetState(c.Chat().ID)
	_ = c.Respond()
	return h.editOrSend(c, adminMenuText(h.store.Len()), adminMenuMarkup())
}

// handleLock ends the chat's admin session
func (h *Handler) handleLock(c tele.Context) error {
	chatID := c.Chat().ID
	h.auth.Lock(chatID)
	h.ResetState(chatID)

	h.logger.Info("Admin locked", zap.Int64("chat_id", chatID))
	_ = c.Respond(&tele.CallbackResponse{Text: "Locked"})
	return h.editOrSend(c, mainMenuText, mainMenuMarkup())
}

// handleAddWord starts the word → meaning → example flow for a new entry
func (h *Handler) handleAddWord(c tele.Context) error {
	h.SetState(c.Chat().ID, &domain.StateData{State: domain.StateWaitingWord})
	_ = c.Respond()
	return h.editOrSend(c, "➕ Add New Word\n\nSend the English word:", cancelMarkup())
}

// handleImportPrompt waits for pasted JSON
func (h *Handler) handleImportPrompt(c tele.Context) error {
	h.SetState(c.Chat().ID, &domain.StateData{State: domain.StateWaitingImport})
	_ = c.Respond()
	return h.editOrSend(c,
		"📥 Import JSON\n\nPaste either {\"hello\": \"xin chào\"} or "+
			"[{\"word\": \"Agile\", \"meaning\": \"Linh hoạt\", \"example\": \"...\"}]",
		cancelMarkup(),
	)
}

// handleGeneratePrompt waits for a topic
func (h *Handler) handleGeneratePrompt(c tele.Context) error {
	h.SetState(c.Chat().ID, &domain.StateData{State: domain.StateWaitingTopic})
	_ = c.Respond()
	return h.editOrSend(c, "🤖 Generate with AI\n\nEnter a topic (e.g. Job Interview):", cancelMarkup())
}

// handleList shows one page of the vocabulary list
func (h *Handler) handleList(c tele.Context) error {
	page := 1
	if args := c.Args(); len(args) > 0 {
		if p, err := strconv.Atoi(args[0]); err == nil {
			page = p
		}
	}
	_ = c.Respond()
	return h.showList(c, page)
}

func (h *Handler) showList(c tele.Context, page int) error {
	entries, totalPages := h.vocab.List(page)
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return h.editOrSend(c, renderList(entries, page, totalPages), listMarkup(entries, page, totalPages))
}

// handleEntryAction handles edit/delete buttons in the list
func (h *Handler) handleEntryAction(c tele.Context) error {
	chatID := c.Chat().ID
	args := c.Args()
	if len(args) != 3 {
		return c.Respond()
	}
	action, id, page := args[0], args[1], args[2]

	entry, ok := h.store.Find(id)
	if !ok {
		_ = c.Respond(&tele.CallbackResponse{Text: notFoundText})
		p, _ := strconv.Atoi(page)
		return h.showList(c, p)
	}

	switch action {
	case actionEdit:
		h.SetState(chatID, &domain.StateData{State: domain.StateWaitingWord, Draft: entry})
		_ = c.Respond()
		return h.editOrSend(c,
			"✏️ Edit Word\n\nCurrent word: "+entry.Word+"\nSend the new word. "+keepValueHint,
			cancelMarkup(),
		)
	case actionDelete:
		_ = c.Respond()
		return h.editOrSend(c,
			confirmDelText+"\n\n"+entry.Word+" — "+entry.Meaning,
			confirmMarkup(confirmDelete, id, page),
		)
	}
	return c.Respond()
}

// handleResetPrompt asks before restoring the default deck
func (h *Handler) handleResetPrompt(c tele.Context) error {
	_ = c.Respond()
	return h.editOrSend(c, confirmResetText, confirmMarkup(confirmReset))
}

// handleClearPrompt asks before removing every entry
func (h *Handler) handleClearPrompt(c tele.Context) error {
	if h.store.Len() == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "Danh sách đã trống.", ShowAlert: true})
	}
	_ = c.Respond()
	return h.editOrSend(c, confirmClearText, confirmMarkup(confirmClear))
}

// handleConfirm performs a confirmed destructive action
func (h *Handler) handleConfirm(c tele.Context) error {
	chatID := c.Chat().ID
	args := c.Args()
	if len(args) == 0 {
		return c.Respond()
	}

	switch args[0] {
	case confirmReset:
		h.vocab.Reset()
		h.logger.Info("Vocabulary reset to default", zap.Int64("chat_id", chatID))
		_ = c.Respond(&tele.CallbackResponse{Text: resetDoneText})
		return h.editOrSend(c, resetDoneText+"\n\n"+adminMenuText(h.store.Len()), adminMenuMarkup())

	case confirmClear:
		if err := h.vocab.Clear(); err != nil {
			return c.Respond(&tele.CallbackResponse{Text: userMessage(err), ShowAlert: true})
		}
		h.logger.Info("Vocabulary cleared", zap.Int64("chat_id", chatID))
		_ = c.Respond(&tele.CallbackResponse{Text: clearDoneText})
		return h.editOrSend(c, clearDoneText+"\n\n"+adminMenuText(0), adminMenuMarkup())

	case confirmDelete:
		if len(args) != 3 {
			return c.Respond()
		}
		page, _ := strconv.Atoi(args[2])
		if err := h.vocab.Delete(args[1]); err != nil {
			h.logger.Warn("Failed to delete entry", zap.String("entry_id", args[1]), zap.Error(err))
			_ = c.Respond(&tele.CallbackResponse{Text: userMessage(err)})
			return h.showList(c, page)
		}
		_ = c.Respond(&tele.CallbackResponse{Text: "Deleted"})
		return h.showList(c, page)
	}

	return c.Respond()
}
