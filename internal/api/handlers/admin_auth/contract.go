package admin_auth

import "net/http"

type SessionManager interface {
	Authenticate(login, password string) error
	SetSession(w http.ResponseWriter, r *http.Request) error
	ClearSession(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
