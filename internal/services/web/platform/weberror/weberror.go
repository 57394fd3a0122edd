// Package weberror renders shared error responses for web modules.
package weberror

import (
	stderrors "errors"
	"net/http"
	"strings"

	apperrors "github.com/crackedpillars/chisel/internal/services/web/platform/errors"
	"github.com/crackedpillars/chisel/internal/services/web/platform/httpx"
	"github.com/crackedpillars/chisel/internal/services/web/platform/i18n"
	"github.com/crackedpillars/chisel/internal/services/web/platform/pagerender"
	webtemplates "github.com/crackedpillars/chisel/internal/services/web/templates"
)

// PublicMessage resolves a user-safe error message, preferring the
// typed application message over the raw HTTP status text.
func PublicMessage(copy i18n.Copy, err error) string {
	if err == nil {
		return ""
	}
	var appErr apperrors.Error
	if asAppError(err, &appErr) {
		switch appErr.Kind {
		case apperrors.KindUnauthorized:
			return copy.ErrAuthRequired
		case apperrors.KindNotFound:
			return copy.ErrPageNotFound
		}
		if message := strings.TrimSpace(appErr.Message); message != "" {
			return message
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return copy.ErrInternal
}

// WriteBanner answers a failed HTMX action with a banner fragment
// retargeted at the page banner slot. The triggering region keeps its
// previous canonical markup because nothing else is swapped.
func WriteBanner(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	if w == nil {
		return
	}
	httpx.RetargetBanner(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	banner := webtemplates.Banner(webtemplates.NoticeView{Kind: "error", Message: message})
	_ = banner.Render(httpx.RequestContext(r), w)
}

// WritePageError writes a full error page, or a banner for HTMX
// requests.
func WritePageError(w http.ResponseWriter, r *http.Request, resolver pagerender.RequestResolver, statusCode int, message string) {
	if w == nil {
		return
	}
	copy := i18n.ForRequest(r)
	if message == "" {
		message = copy.ErrInternal
		if statusCode == http.StatusNotFound {
			message = copy.ErrPageNotFound
		}
	}
	if httpx.IsHTMXRequest(r) {
		WriteBanner(w, r, statusCode, message)
		return
	}
	page := pagerender.Page{
		Title:      message,
		StatusCode: statusCode,
		Fragment: webtemplates.ErrorPage(webtemplates.ErrorView{
			Status:  statusCode,
			Message: message,
			Copy:    copy,
		}),
	}
	if err := pagerender.WritePage(w, r, resolver, page); err != nil {
		http.Error(w, message, statusCode)
	}
}

func asAppError(err error, target *apperrors.Error) bool {
	return stderrors.As(err, target)
}
