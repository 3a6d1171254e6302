// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, client_ip) and completion (status,
duration_ms).

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Any origin is allowed. Methods GET, POST, PUT, DELETE, OPTIONS with
headers Content-Type and Authorization; Content-Disposition is exposed so
browsers can read the export file name.

# Response Envelope

Every JSON endpoint answers with models.APIResponse:

	{"success": true, "message": "...", "data": {...}}
	{"success": false, "message": "...", "errors": {"field": "..."}}

Helpers:

	middleware.SuccessResponse(w, models.MsgDraftSaved, survey)
	middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgSurveyNotFound)
	middleware.ValidationErrorResponse(w, errs)

JSONResponse writes any value with an explicit status.

Parse JSON request bodies:

	var req models.SurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidJSON)
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logs.
*/
package middleware
