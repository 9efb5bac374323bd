package handler

import (
	"context"

	"flashvocab/internal/domain"
	"flashvocab/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleLearn shows the current Learn card
func (h *Handler) handleLearn(c tele.Context) error {
	if c.Callback() != nil {
		_ = c.Respond()
	}
	return h.showCard(c, domain.ViewLearn)
}

// handleFavorites shows the current Favorites card
func (h *Handler) handleFavorites(c tele.Context) error {
	if c.Callback() != nil {
		_ = c.Respond()
	}
	return h.showCard(c, domain.ViewFavorites)
}

// handleCardAction handles prev/next/flip/pin/explain on a card
func (h *Handler) handleCardAction(c tele.Context) error {
	args := c.Args()
	if len(args) != 2 {
		return c.Respond()
	}
	view, ok := parseView(args[0])
	if !ok {
		return c.Respond()
	}

	chatID := c.Chat().ID
	nav := h.navigator(chatID)

	switch args[1] {
	case actionPrev:
		nav.Previous(view)
	case actionNext:
		nav.Next(view)
	case actionFlip:
		if card, ok := nav.Current(view); ok {
			h.updateCard(chatID, view, card.Entry.ID, func(cv *domain.CardView) {
				cv.Flipped = !cv.Flipped
			})
		}
	case actionPin:
		if card, ok := nav.Current(view); ok {
			entry, _ := h.vocab.TogglePin(card.Entry.ID)
			h.logger.Debug("Pin toggled",
				zap.Int64("chat_id", chatID),
				zap.String("entry_id", entry.ID),
				zap.Bool("pinned", entry.Pinned),
			)
		}
	case actionExplain:
		return h.explainCard(c, view, nav)
	default:
		h.logger.Warn("Unknown card action", zap.String("action", args[1]))
		return c.Respond()
	}

	_ = c.Respond()
	return h.showCard(c, view)
}

// showCard renders the chat's current card of view, or the empty state
func (h *Handler) showCard(c tele.Context, view domain.View) error {
	chatID := c.Chat().ID

	card, ok := h.navigator(chatID).Current(view)
	if !ok {
		text, markup := emptyView(view)
		return h.editOrSend(c, text, markup)
	}

	cv := h.updateCard(chatID, view, card.Entry.ID, nil)
	return h.editOrSend(c, renderCard(view, card, cv), cardMarkup(view, card.Entry))
}

// explainCard asks the AI about the shown word once per card
func (h *Handler) explainCard(c tele.Context, view domain.View, nav *service.Navigator) error {
	chatID := c.Chat().ID

	card, ok := nav.Current(view)
	if !ok {
		return c.Respond()
	}

	var busy, cached bool
	cv := h.updateCard(chatID, view, card.Entry.ID, func(cv *domain.CardView) {
		busy, cached = cv.Explaining, cv.Explanation != ""
		if !busy && !cached {
			cv.Explaining = true
		}
	})
	switch {
	case busy:
		return c.Respond(&tele.CallbackResponse{Text: "Still thinking..."})
	case cached:
		return c.Respond(&tele.CallbackResponse{Text: "Already explained"})
	}

	_ = c.Respond(&tele.CallbackResponse{Text: "Asking AI..."})
	if err := h.editOrSend(c, renderCard(view, card, cv), cardMarkup(view, card.Entry)); err != nil {
		h.logger.Warn("Failed to show explain progress", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), aiTimeout)
	defer cancel()
	text := h.generation.Explain(ctx, card.Entry.Word)

	// A different card may be shown by now; its view was reset and the result is dropped
	h.sessionMux.Lock()
	current := h.cards[cardKey{chatID: chatID, view: view}]
	stale := current == nil || current.EntryID != card.Entry.ID
	if !stale {
		current.Explaining = false
		current.Explanation = text
	}
	h.sessionMux.Unlock()

	if stale {
		h.logger.Debug("Dropping stale explanation",
			zap.Int64("chat_id", chatID),
			zap.String("entry_id", card.Entry.ID),
		)
		return nil
	}
	return h.showCard(c, view)
}
