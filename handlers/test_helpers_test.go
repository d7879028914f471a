package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent wraps a request and recorder in a RequestEvent.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// postJSON builds a POST request carrying a JSON calculation.
func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// exportRequest targets the export route with the {format} path value set
// the way the router would.
func exportRequest(format, body string) *http.Request {
	req := postJSON("/api/calculation/export/"+format, body)
	req.SetPathValue("format", format)
	return req
}
