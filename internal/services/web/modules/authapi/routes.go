package authapi

import (
	"net/http"

	"github.com/crackedpillars/chisel/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthLogin, h.handleLogin)
	mux.HandleFunc(http.MethodGet+" "+routepath.AuthVerify, h.handleVerify)
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthLogout, h.handleLogout)
}
