package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"flashvocab/internal/domain"
	"flashvocab/internal/service"

	tele "gopkg.in/telebot.v3"
)

// User-facing texts
const (
	mainMenuText     = "🃏 Hẻo Bái FlashVocab AI\n\nChoose a section:"
	emptyLearnText   = "No vocabulary found. Please go to Admin to add some words."
	emptyFavText     = "⭐ No Favorite Words\n\nStar words in the Learn section to review them here."
	passcodeText     = "🔐 Admin Access\n\nEnter the passcode:"
	wrongPasscode    = "Incorrect password"
	adminOnlyText    = "Admin access required. Use /admin to enter the passcode."
	generateFailText = "AI generation failed. Please check your API key or try again."
	notFoundText     = "This word no longer exists."
	genericErrorText = "Something went wrong. Please try again."
	confirmResetText = "Bạn có chắc muốn KHÔI PHỤC MẶC ĐỊNH? Mọi từ vựng bạn đã thêm sẽ bị mất và quay về danh sách gốc."
	confirmClearText = "CẢNH BÁO: Bạn có chắc muốn XÓA TẤT CẢ từ vựng không? Hành động này không thể hoàn tác."
	confirmDelText   = "Xóa từ này?"
	resetDoneText    = "Đã khôi phục dữ liệu gốc."
	clearDoneText    = "Đã xóa sạch toàn bộ từ vựng."
	keepValueHint    = "Send - to keep the current value."
)

// Telegram limits for inline button payloads and message text.
// Message length is counted in UTF-16 code units.
const (
	maxCallbackData = 64
	maxMessageText  = 4096
)

// renderCard builds the text of one flashcard
func renderCard(view domain.View, card service.Card, cv domain.CardView) string {
	var b strings.Builder

	title := "📚 Learn"
	if view == domain.ViewFavorites {
		title = "⭐ Favorites"
	}
	fmt.Fprintf(&b, "%s · %d / %d\n\n", title, card.Index+1, card.Total)

	b.WriteString(card.Entry.Word)
	if card.Entry.Pinned {
		b.WriteString(" ⭐")
	}
	b.WriteString("\n\n")

	if !cv.Flipped {
		b.WriteString("Tap Flip to see the meaning.")
	} else {
		b.WriteString("Meaning: " + card.Entry.Meaning)
		if card.Entry.Example != "" {
			b.WriteString("\nExample: \"" + card.Entry.Example + "\"")
		}
	}

	switch {
	case cv.Explaining:
		b.WriteString("\n\n🤖 Thinking...")
	case cv.Explanation != "":
		header := "\n\n🤖 AI Explanation:\n"
		budget := maxMessageText - textLen(b.String()) - textLen(header)
		if budget > 0 {
			b.WriteString(header + truncateText(cv.Explanation, budget))
		}
	}

	return truncateText(b.String(), maxMessageText)
}

// textLen counts s the way Telegram does, in UTF-16 code units
func textLen(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r >= 0x10000 {
			n++
		}
	}
	return n
}

// truncateText cuts s on a rune boundary so that it fits in limit
// UTF-16 code units, ending with an ellipsis when anything was cut.
func truncateText(s string, limit int) string {
	if textLen(s) <= limit {
		return s
	}
	const ellipsis = "…"
	limit -= textLen(ellipsis)

	n := 0
	for i, r := range s {
		w := 1
		if r >= 0x10000 {
			w = 2
		}
		if n+w > limit {
			return s[:i] + ellipsis
		}
		n += w
	}
	return s
}

// cardMarkup builds the navigation keyboard under a card
func cardMarkup(view domain.View, entry domain.Entry) *tele.ReplyMarkup {
	v := string(view)
	markup := &tele.ReplyMarkup{}

	pinText := "☆ Favorite"
	if entry.Pinned {
		pinText = "★ Unpin word"
	}

	markup.Inline(
		markup.Row(
			markup.Data("⬅️", btnCard.Unique, v, actionPrev),
			markup.Data("🔄 Flip", btnCard.Unique, v, actionFlip),
			markup.Data("➡️", btnCard.Unique, v, actionNext),
		),
		markup.Row(
			markup.Data(pinText, btnCard.Unique, v, actionPin),
			markup.Data("🤖 Ask AI", btnCard.Unique, v, actionExplain),
		),
		markup.Row(btnMainMenu),
	)
	return markup
}

// emptyView returns the text and keyboard shown when a view has no cards
func emptyView(view domain.View) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}
	if view == domain.ViewFavorites {
		markup.Inline(markup.Row(btnLearn), markup.Row(btnMainMenu))
		return emptyFavText, markup
	}
	markup.Inline(markup.Row(btnAdmin), markup.Row(btnMainMenu))
	return emptyLearnText, markup
}

// parseView maps a callback payload back to a view
func parseView(s string) (domain.View, bool) {
	switch domain.View(s) {
	case domain.ViewLearn, domain.ViewFavorites:
		return domain.View(s), true
	}
	return "", false
}

// adminMenuText summarizes the deck on the admin dashboard
func adminMenuText(total int) string {
	return fmt.Sprintf("🛠 Admin Dashboard\n\n%d words in the list.", total)
}

// renderList builds the text of one admin list page
func renderList(entries []domain.Entry, page, totalPages int) string {
	if len(entries) == 0 {
		return "📋 No vocabulary items."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Words (page %d/%d)\n\n", page, totalPages)
	offset := (page - 1) * service.ListPageSize
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s — %s", offset+i+1, e.Word, e.Meaning)
		if e.Pinned {
			b.WriteString(" ⭐")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// listMarkup builds edit/delete buttons for a list page plus paging
func listMarkup(entries []domain.Entry, page, totalPages int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	p := strconv.Itoa(page)
	offset := (page - 1) * service.ListPageSize

	for i, e := range entries {
		if !fitsCallback(btnConfirm.Unique, confirmDelete, e.ID, p) {
			continue
		}
		n := strconv.Itoa(offset + i + 1)
		rows = append(rows, markup.Row(
			markup.Data("✏️ "+n, btnEntry.Unique, actionEdit, e.ID, p),
			markup.Data("🗑 "+n, btnEntry.Unique, actionDelete, e.ID, p),
		))
	}

	// Add pagination buttons
	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", btnList.Unique, strconv.Itoa(page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", btnList.Unique, strconv.Itoa(page+1)))
		}
		rows = append(rows, navRow)
	}

	rows = append(rows, markup.Row(btnAdminMenu))
	markup.Inline(rows...)
	return markup
}

// confirmMarkup asks for a yes/no on a destructive admin action
func confirmMarkup(what string, args ...string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	data := append([]string{what}, args...)
	markup.Inline(markup.Row(
		markup.Data("✅ Yes", btnConfirm.Unique, data...),
		btnAdminMenu,
	))
	return markup
}

// fitsCallback reports whether a button payload stays within Telegram's
// limit and splits back into the same arguments.
func fitsCallback(unique string, data ...string) bool {
	for _, d := range data {
		if strings.Contains(d, "|") {
			return false
		}
	}
	return len("\f"+unique+"|"+strings.Join(data, "|")) <= maxCallbackData
}

// userMessage converts an error into text safe to show in the chat
func userMessage(err error) string {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		lines := make([]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			if fe.Field == "" {
				lines = append(lines, fe.Message)
				continue
			}
			lines = append(lines, fe.Field+": "+fe.Message)
		}
		return "⚠️ " + strings.Join(lines, "\n")
	case errors.Is(err, domain.ErrGenerationFailed):
		return generateFailText
	case errors.Is(err, domain.ErrNotFound):
		return notFoundText
	default:
		return genericErrorText
	}
}
