// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"html/template"
	"net/http"

	"github.com/canonical/event-crm/internal/logging"
	"github.com/canonical/event-crm/pkg/authentication"
)

// The dashboard and client portal are rendered by the frontend, the
// placeholder only proves the gate let the navigation through.
var placeholder = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>event-crm</title></head>
<body>
<p>{{.Path}}</p>
{{if .Role}}<p>signed in as {{.Email}} ({{.Role}})</p>{{end}}
</body>
</html>
`))

type pageData struct {
	Path  string
	Email string
	Role  string
}

func pageHandler(logger logging.LoggerInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData{Path: r.URL.Path}
		if p, ok := authentication.GetPrincipal(r.Context()); ok {
			data.Email = p.Email
			data.Role = p.Role
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := placeholder.Execute(w, data); err != nil {
			logger.Errorf("failed to render page: %v", err)
		}
	}
}
