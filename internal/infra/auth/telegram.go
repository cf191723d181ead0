package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"dispatch/config"
	"dispatch/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultInitDataMaxAge = 24 * time.Hour

// Verification failures. They all surface to clients as 401.
var (
	ErrInitDataMissingHash = errors.New("init data has no hash")
	ErrInitDataBadHash     = errors.New("init data signature mismatch")
	ErrInitDataExpired     = errors.New("init data is too old")
	ErrInitDataNoUser      = errors.New("init data has no user")
)

// telegramVerifier checks Mini App init data signed with the bot token.
type telegramVerifier struct {
	secretKey []byte
	maxAge    time.Duration
	now       func() time.Time
}

// NewTelegramVerifier is the constructor for telegramVerifier.
func NewTelegramVerifier(cfg *config.Config) service.InitDataVerifier {
	var botToken string
	maxAge := defaultInitDataMaxAge
	if cfg.Auth != nil {
		botToken = cfg.Auth.TelegramBotToken
		if cfg.Auth.InitDataMaxAge > 0 {
			maxAge = cfg.Auth.InitDataMaxAge
		}
	}

	return &telegramVerifier{
		secretKey: webAppSecret(botToken),
		maxAge:    maxAge,
		now:       time.Now,
	}
}

// webAppSecret derives the signing key: HMAC-SHA256 of the bot token keyed with "WebAppData".
func webAppSecret(botToken string) []byte {
	mac := hmac.New(sha256.New, []byte("WebAppData"))
	mac.Write([]byte(botToken))

	return mac.Sum(nil)
}

// Verify checks the hash and freshness of initData and returns its user.
func (v *telegramVerifier) Verify(initData string) (*service.TelegramUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, errors.Wrap(err, "malformed init data")
	}

	hash := values.Get("hash")
	if hash == "" {
		return nil, ErrInitDataMissingHash
	}

	expected := signInitData(v.secretKey, values)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(hash))) {
		return nil, ErrInitDataBadHash
	}

	authUnix, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid auth_date")
	}
	authDate := time.Unix(authUnix, 0)
	if v.now().Sub(authDate) > v.maxAge {
		return nil, ErrInitDataExpired
	}

	rawUser := values.Get("user")
	if rawUser == "" {
		return nil, ErrInitDataNoUser
	}

	var user service.TelegramUser
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, errors.Wrap(err, "invalid user payload")
	}
	if user.ID == 0 {
		return nil, ErrInitDataNoUser
	}
	user.AuthDate = authDate

	return &user, nil
}

// signInitData computes the hex signature over the sorted "key=value" lines, hash excluded.
func signInitData(secretKey []byte, values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k != "hash" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+values.Get(k))
	}

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(strings.Join(lines, "\n")))

	return hex.EncodeToString(mac.Sum(nil))
}
