package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/bcrypt"
)

const cookieName = "salon_admin_session"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
)

// Manager управляет админской сессией на защищённой cookie
// Единственный администратор задаётся логином и bcrypt-хэшем пароля в конфигурации
type Manager struct {
	sc           *securecookie.SecureCookie
	login        string
	passwordHash string
	ttl          time.Duration
}

// NewManager создает менеджер сессий
func NewManager(hashKey, blockKey []byte, login, passwordHash string, ttl time.Duration) *Manager {
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(int(ttl.Seconds()))
	return &Manager{
		sc:           sc,
		login:        login,
		passwordHash: passwordHash,
		ttl:          ttl,
	}
}

// HashPassword возвращает bcrypt-хэш пароля (утилита для генерации конфигурации)
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

// Authenticate сверяет логин и пароль с конфигурацией
func (m *Manager) Authenticate(login, password string) error {
	if login != m.login {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// SetSession выставляет сессионную cookie после успешного входа
func (m *Manager) SetSession(w http.ResponseWriter, r *http.Request) error {
	val := map[string]interface{}{"admin": true, "v": 1}
	encoded, err := m.sc.Encode(cookieName, val)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
		MaxAge:   int(m.ttl.Seconds()),
	})
	return nil
}

// ClearSession сбрасывает сессионную cookie
func (m *Manager) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// IsAuthenticated проверяет наличие валидной админской сессии в запросе
func (m *Manager) IsAuthenticated(r *http.Request) bool {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return false
	}
	val := map[string]interface{}{}
	if err := m.sc.Decode(cookieName, c.Value, &val); err != nil {
		return false
	}
	admin, ok := val["admin"].(bool)
	return ok && admin
}
