package handler

import (
	"sync"
	"time"

	"flashvocab/internal/domain"
	"flashvocab/internal/middleware"
	"flashvocab/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// aiTimeout bounds a single generate or explain round trip
const aiTimeout = 60 * time.Second

// Services bundles everything the handler dispatches to
type Services struct {
	Store      *service.VocabStore
	Vocab      *service.VocabService
	Importer   *service.ImportService
	Generation *service.GenerationService
	Auth       *service.AuthService
	Indexes    service.IndexStorage
}

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	store      *service.VocabStore
	vocab      *service.VocabService
	importer   *service.ImportService
	generation *service.GenerationService
	auth       *service.AuthService
	indexes    service.IndexStorage
	logger     *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Per-chat cursors and card presentation
	navigators map[int64]*service.Navigator
	cards      map[cardKey]*domain.CardView
	sessionMux sync.Mutex

	generating map[int64]bool
	genMux     sync.Mutex
}

type cardKey struct {
	chatID int64
	view   domain.View
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, svc Services, logger *zap.Logger) *Handler {
	return &Handler{
		bot:        bot,
		store:      svc.Store,
		vocab:      svc.Vocab,
		importer:   svc.Importer,
		generation: svc.Generation,
		auth:       svc.Auth,
		indexes:    svc.Indexes,
		logger:     logger,
		states:     make(map[int64]*domain.StateData),
		navigators: make(map[int64]*service.Navigator),
		cards:      make(map[cardKey]*domain.CardView),
		generating: make(map[int64]bool),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/learn", h.handleLearn)
	h.bot.Handle("/favorites", h.handleFavorites)
	h.bot.Handle("/admin", h.handleAdmin)
	h.bot.Handle("/cancel", h.handleCancel)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnLearn, h.handleLearn)
	h.bot.Handle(&btnFavorites, h.handleFavorites)
	h.bot.Handle(&btnAdmin, h.handleAdmin)
	h.bot.Handle(&btnMainMenu, h.handleStart)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnCard, h.handleCardAction)

	// Admin buttons require an unlocked chat
	admin := h.bot.Group()
	admin.Use(middleware.AdminOnly(h.auth, h.logger))
	admin.Handle(&btnAdminMenu, h.handleAdminMenu)
	admin.Handle(&btnAdd, h.handleAddWord)
	admin.Handle(&btnImport, h.handleImportPrompt)
	admin.Handle(&btnGenerate, h.handleGeneratePrompt)
	admin.Handle(&btnList, h.handleList)
	admin.Handle(&btnEntry, h.handleEntryAction)
	admin.Handle(&btnReset, h.handleResetPrompt)
	admin.Handle(&btnClear, h.handleClearPrompt)
	admin.Handle(&btnConfirm, h.handleConfirm)
	admin.Handle(&btnLock, h.handleLock)

	// Generic callback handler for stale buttons
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(chatID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[chatID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(chatID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[chatID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(chatID int64) {
	h.SetState(chatID, &domain.StateData{State: domain.StateIdle})
}

// navigator returns the chat's cursors, restoring the Learn position on first use
func (h *Handler) navigator(chatID int64) *service.Navigator {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	nav, ok := h.navigators[chatID]
	if !ok {
		nav = service.NewNavigator(h.store, h.indexes, service.ChatLearnKey(chatID))
		h.navigators[chatID] = nav
	}
	return nav
}

// endSession drops the chat's cursors and card views. The Learn position
// is restored from storage on the next visit.
func (h *Handler) endSession(chatID int64) {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	delete(h.navigators, chatID)
	for _, view := range []domain.View{domain.ViewLearn, domain.ViewFavorites} {
		delete(h.cards, cardKey{chatID: chatID, view: view})
	}
}

// updateCard runs fn on the chat's card view for entryID and returns a copy.
// The view is reset first when a different entry is now shown.
func (h *Handler) updateCard(chatID int64, view domain.View, entryID string, fn func(cv *domain.CardView)) domain.CardView {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	key := cardKey{chatID: chatID, view: view}
	cv, ok := h.cards[key]
	if !ok {
		cv = &domain.CardView{EntryID: entryID}
		h.cards[key] = cv
	}
	cv.Reset(entryID)
	if fn != nil {
		fn(cv)
	}
	return *cv
}

// beginGenerating reports false when the chat already has a generation running
func (h *Handler) beginGenerating(chatID int64) bool {
	h.genMux.Lock()
	defer h.genMux.Unlock()

	if h.generating[chatID] {
		return false
	}
	h.generating[chatID] = true
	return true
}

func (h *Handler) endGenerating(chatID int64) {
	h.genMux.Lock()
	defer h.genMux.Unlock()
	delete(h.generating, chatID)
}
