package handler

import tele "gopkg.in/telebot.v3"

// Callback payload values for card buttons
const (
	actionPrev    = "prev"
	actionNext    = "next"
	actionFlip    = "flip"
	actionPin     = "pin"
	actionExplain = "explain"

	actionEdit   = "edit"
	actionDelete = "delete"

	confirmReset  = "reset"
	confirmClear  = "clear"
	confirmDelete = "delete"
)

// Inline keyboard buttons
var (
	btnLearn = tele.Btn{
		Unique: "learn",
		Text:   "📚 Learn",
	}
	btnFavorites = tele.Btn{
		Unique: "favorites",
		Text:   "⭐ Favorites",
	}
	btnAdmin = tele.Btn{
		Unique: "admin",
		Text:   "🛠 Admin",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Menu",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}

	// Dynamic buttons: payload is built with markup.Data
	btnCard    = tele.Btn{Unique: "card"}
	btnList    = tele.Btn{Unique: "admin_list"}
	btnEntry   = tele.Btn{Unique: "entry"}
	btnConfirm = tele.Btn{Unique: "confirm"}

	btnAdminMenu = tele.Btn{
		Unique: "admin_menu",
		Text:   "◀️ Admin menu",
	}
	btnAdd = tele.Btn{
		Unique: "admin_add",
		Text:   "➕ Add word",
	}
	btnImport = tele.Btn{
		Unique: "admin_import",
		Text:   "📥 Import JSON",
	}
	btnGenerate = tele.Btn{
		Unique: "admin_generate",
		Text:   "🤖 Generate with AI",
	}
	btnReset = tele.Btn{
		Unique: "admin_reset",
		Text:   "♻️ Khôi phục danh sách gốc",
	}
	btnClear = tele.Btn{
		Unique: "admin_clear",
		Text:   "🗑 Xóa sạch danh sách",
	}
	btnLock = tele.Btn{
		Unique: "admin_lock",
		Text:   "🔒 Lock",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnLearn, btnFavorites),
		menu.Row(btnAdmin),
	)
	return menu
}

// cancelMarkup offers a way out of a text prompt
func cancelMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnCancel))
	return menu
}

// adminMenuMarkup returns the admin dashboard keyboard
func adminMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnAdd, btnImport),
		menu.Row(btnGenerate),
		menu.Row(menu.Data("📋 List words", btnList.Unique, "1")),
		menu.Row(btnReset),
		menu.Row(btnClear),
		menu.Row(btnLock, btnMainMenu),
	)
	return menu
}
