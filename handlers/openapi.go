// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/migrant-roadmap/middleware"
	"github.com/danielhkuo/migrant-roadmap/models"
)

//go:embed api/openapi.yaml
var openAPIDocument []byte

// openAPIJSON converts the embedded YAML description once.
var openAPIJSON = sync.OnceValues(func() ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(openAPIDocument, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse API description: %w", err)
	}
	return json.Marshal(doc)
})

// OpenAPI handles GET /api/openapi.json
func OpenAPI(w http.ResponseWriter, r *http.Request) {
	body, err := openAPIJSON()
	if err != nil {
		slog.Error("failed to load API description", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgInternalError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
