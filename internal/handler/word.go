package handler

import (
	"context"
	"fmt"
	"strings"

	"flashvocab/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// keepValue is the reply that leaves a field unchanged while editing
const keepValue = "-"

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	chatID := c.Chat().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(chatID)

	if state.State == domain.StateWaitingPasscode {
		return h.checkPasscode(c, text)
	}

	if state.State != domain.StateIdle && !h.auth.IsAuthorized(chatID) {
		h.ResetState(chatID)
		return c.Send(adminOnlyText)
	}

	switch state.State {
	case domain.StateWaitingImport:
		return h.importJSON(c, c.Text())
	case domain.StateWaitingTopic:
		return h.generateFromTopic(c, text)
	case domain.StateWaitingWord, domain.StateWaitingMeaning, domain.StateWaitingExample:
		return h.fillDraft(c, state, text)
	default:
		return c.Send("Use /learn, /favorites or /admin.", mainMenuMarkup())
	}
}

func (h *Handler) checkPasscode(c tele.Context, text string) error {
	chatID := c.Chat().ID

	if !h.auth.CheckPasscode(text) {
		h.logger.Info("Wrong admin passcode", zap.Int64("chat_id", chatID))
		return c.Send(wrongPasscode, cancelMarkup())
	}

	h.auth.Unlock(chatID)
	h.ResetState(chatID)
	h.logger.Info("Admin unlocked", zap.Int64("chat_id", chatID))
	return c.Send("✅ Access granted.\n\n"+adminMenuText(h.store.Len()), adminMenuMarkup())
}

func (h *Handler) importJSON(c tele.Context, raw string) error {
	chatID := c.Chat().ID

	count, err := h.importer.Import(raw)
	if err != nil {
		h.logger.Info("Import rejected", zap.Int64("chat_id", chatID), zap.Error(err))
		return c.Send(userMessage(err)+"\n\nSend corrected JSON or cancel.", cancelMarkup())
	}

	h.ResetState(chatID)
	return c.Send(
		fmt.Sprintf("Successfully added %d words!\n\n%s", count, adminMenuText(h.store.Len())),
		adminMenuMarkup(),
	)
}

func (h *Handler) generateFromTopic(c tele.Context, topic string) error {
	chatID := c.Chat().ID

	if !h.beginGenerating(chatID) {
		return c.Send("⏳ Generation is already running. Please wait.")
	}
	defer h.endGenerating(chatID)

	if err := c.Send(fmt.Sprintf("🤖 Generating words for %q...", topic)); err != nil {
		h.logger.Warn("Failed to send progress message", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), aiTimeout)
	defer cancel()

	count, err := h.generation.GenerateFromTopic(ctx, topic)
	if err != nil {
		return c.Send(userMessage(err), cancelMarkup())
	}

	h.ResetState(chatID)
	return c.Send(
		fmt.Sprintf("AI generated %d words for %q!\n\n%s", count, topic, adminMenuText(h.store.Len())),
		adminMenuMarkup(),
	)
}

// fillDraft walks the word → meaning → example prompts, then saves the draft
func (h *Handler) fillDraft(c tele.Context, state *domain.StateData, text string) error {
	chatID := c.Chat().ID
	draft := state.Draft
	editing := draft.ID != ""
	keep := editing && text == keepValue

	switch state.State {
	case domain.StateWaitingWord:
		if !keep {
			draft.Word = text
		}
		h.SetState(chatID, &domain.StateData{State: domain.StateWaitingMeaning, Draft: draft})
		return c.Send(draftPrompt("Vietnamese meaning", draft.Meaning, editing), cancelMarkup())

	case domain.StateWaitingMeaning:
		if !keep {
			draft.Meaning = text
		}
		h.SetState(chatID, &domain.StateData{State: domain.StateWaitingExample, Draft: draft})
		return c.Send(draftPrompt("example sentence (optional, - to skip)", draft.Example, editing), cancelMarkup())
	}

	if text == keepValue {
		if !editing {
			draft.Example = ""
		}
	} else {
		draft.Example = text
	}

	if editing {
		_, err := h.vocab.Update(domain.EntryPatch{
			ID:      draft.ID,
			Word:    &draft.Word,
			Meaning: &draft.Meaning,
			Example: &draft.Example,
		})
		if err != nil {
			h.ResetState(chatID)
			return c.Send(userMessage(err), adminMenuMarkup())
		}
		h.ResetState(chatID)
		return c.Send("Word updated successfully.", adminMenuMarkup())
	}

	if _, err := h.vocab.Create(draft.Word, draft.Meaning, draft.Example); err != nil {
		h.ResetState(chatID)
		return c.Send(userMessage(err), adminMenuMarkup())
	}
	h.ResetState(chatID)
	return c.Send("New word added successfully.", adminMenuMarkup())
}

// draftPrompt asks for the next field, showing the current value while editing
func draftPrompt(field, current string, editing bool) string {
	if !editing {
		return "Send the " + field + ":"
	}
	if current == "" {
		current = "(empty)"
	}
	return fmt.Sprintf("Current %s: %s\nSend the new value. %s", field, current, keepValueHint)
}
