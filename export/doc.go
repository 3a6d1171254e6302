// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export renders a roadmap as a printable HTML document.

	body := export.HTML(roadmap)
	w.Header().Set("Content-Type", export.ContentType)

The document is self-contained: inline styles, no scripts, no external
assets. Dates are written as DD.MM.YYYY. Titles and descriptions are
HTML-escaped. A roadmap without recommendations still renders the heading
and creation date.
*/
package export
