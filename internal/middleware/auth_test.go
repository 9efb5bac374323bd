package middleware

import (
	"testing"

	"flashvocab/internal/service"
	"flashvocab/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name       string
		unlocked   bool
		callback   bool
		wantCalled bool
	}{
		{name: "unlocked chat passes", unlocked: true, callback: true, wantCalled: true},
		{name: "locked callback is answered", unlocked: false, callback: true},
		{name: "locked message is answered", unlocked: false, callback: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := service.NewAuthService("0000")
			if tt.unlocked {
				auth.Unlock(7)
			}

			called := false
			next := func(c tele.Context) error {
				called = true
				return nil
			}
			handler := AdminOnly(auth, testutil.NewTestLogger())(next)

			c := testutil.NewCommandContext(7, "")
			c.IsCallback = tt.callback

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantCalled {
				return
			}
			if tt.callback {
				require.Len(t, c.Responses, 1)
				assert.Equal(t, adminOnlyText, c.Responses[0].Text)
				assert.True(t, c.Responses[0].ShowAlert)
			} else {
				assert.Equal(t, []string{adminOnlyText}, c.Sent)
			}
		})
	}
}
