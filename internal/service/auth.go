package service

import "sync"

// AuthService gates the admin screens behind a fixed passcode.
// Unlocks live in memory only and end with the process.
type AuthService struct {
	passcode string

	mu       sync.RWMutex
	unlocked map[int64]bool
}

// NewAuthService creates a new auth service
func NewAuthService(passcode string) *AuthService {
	return &AuthService{
		passcode: passcode,
		unlocked: make(map[int64]bool),
	}
}

// CheckPasscode verifies if provided passcode matches
func (s *AuthService) CheckPasscode(passcode string) bool {
	return passcode == s.passcode
}

// IsAuthorized checks if the chat unlocked the admin screens
func (s *AuthService) IsAuthorized(chatID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unlocked[chatID]
}

// Unlock marks the chat as admin
func (s *AuthService) Unlock(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlocked[chatID] = true
}

// Lock revokes admin access for the chat
func (s *AuthService) Lock(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.unlocked, chatID)
}
