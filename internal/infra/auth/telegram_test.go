package auth

import (
	"net/url"
	"strconv"
	"testing"
	"time"

	"dispatch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "123456:ABC-test-token"

func signedInitData(t *testing.T, botToken string, authDate time.Time, user string) string {
	t.Helper()

	values := url.Values{}
	values.Set("auth_date", strconv.FormatInt(authDate.Unix(), 10))
	values.Set("query_id", "AAHdF6IQAAAAAN0XohDhrOrc")
	if user != "" {
		values.Set("user", user)
	}
	values.Set("hash", signInitData(webAppSecret(botToken), values))

	return values.Encode()
}

func newTestVerifier(now time.Time) *telegramVerifier {
	cfg := &config.Config{Auth: &config.AuthConfig{TelegramBotToken: testBotToken, InitDataMaxAge: time.Hour}}
	v := NewTelegramVerifier(cfg).(*telegramVerifier)
	v.now = func() time.Time { return now }

	return v
}

func TestTelegramVerifier_Valid(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	v := newTestVerifier(now)

	data := signedInitData(t, testBotToken, now.Add(-10*time.Minute), `{"id":555,"first_name":"Иван","username":"ivan"}`)
	user, err := v.Verify(data)
	require.NoError(t, err)
	assert.Equal(t, int64(555), user.ID)
	assert.Equal(t, "Иван", user.FirstName)
	assert.Equal(t, now.Add(-10*time.Minute).Unix(), user.AuthDate.Unix())
}

func TestTelegramVerifier_Rejects(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	user := `{"id":555}`

	tampered, err := url.ParseQuery(signedInitData(t, testBotToken, now, user))
	require.NoError(t, err)
	tampered.Set("user", `{"id":1}`)

	noHash, err := url.ParseQuery(signedInitData(t, testBotToken, now, user))
	require.NoError(t, err)
	noHash.Del("hash")

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "wrong bot token", data: signedInitData(t, "other", now, user), wantErr: ErrInitDataBadHash},
		{name: "tampered payload", data: tampered.Encode(), wantErr: ErrInitDataBadHash},
		{name: "missing hash", data: noHash.Encode(), wantErr: ErrInitDataMissingHash},
		{name: "expired", data: signedInitData(t, testBotToken, now.Add(-2*time.Hour), user), wantErr: ErrInitDataExpired},
		{name: "no user", data: signedInitData(t, testBotToken, now, ""), wantErr: ErrInitDataNoUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newTestVerifier(now).Verify(tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
