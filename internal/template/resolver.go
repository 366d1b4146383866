/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package template resolves the template source of a command invocation into
// the template fields of a request payload.
package template

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/orien/stackctl/internal/errs"
)

// Fetcher retrieves a raw document from a URL, typically via the API client's
// bare transport
type Fetcher interface {
	RawRequest(ctx context.Context, method, url string) ([]byte, error)
}

// Source holds the three mutually exclusive template flags of a command
type Source struct {
	File   string
	URL    string
	Object string
}

// Fields is the resolved template portion of a request payload: either an
// inline document or a URL the service fetches itself
type Fields struct {
	Template    json.RawMessage
	TemplateURL string
}

// Resolve turns a Source into request Fields. The flags are checked in the
// order file, url, object; the first one set wins. A file is read locally,
// preprocessed (see Process) and parsed as JSON. A url is forwarded untouched
// for the service to fetch. An object is fetched through the given Fetcher
// and parsed as JSON. No flag set at all is a user error.
func Resolve(ctx context.Context, src Source, fetcher Fetcher) (Fields, error) {
	switch {
	case src.File != "":
		raw, err := os.ReadFile(src.File)
		if err != nil {
			return Fields{}, fmt.Errorf("failed to read template file: %w", err)
		}

		rendered, err := Process(string(raw), nil)
		if err != nil {
			return Fields{}, errs.CommandErrorf("could not process template file %s: %v", src.File, err)
		}

		doc, err := parseDocument([]byte(rendered))
		if err != nil {
			return Fields{}, errs.CommandErrorf("could not parse template file %s: %v", src.File, err)
		}
		return Fields{Template: doc}, nil

	case src.URL != "":
		return Fields{TemplateURL: src.URL}, nil

	case src.Object != "":
		body, err := fetcher.RawRequest(ctx, http.MethodGet, src.Object)
		if err != nil {
			return Fields{}, err
		}
		if len(body) == 0 {
			return Fields{}, errs.CommandErrorf("Could not fetch template from %s", src.Object)
		}

		doc, err := parseDocument(body)
		if err != nil {
			return Fields{}, errs.CommandErrorf("could not parse template from %s: %v", src.Object, err)
		}
		return Fields{Template: doc}, nil

	default:
		return Fields{}, errs.CommandErrorf("Need to specify exactly one of --template-file, --template-url or --template-object")
	}
}

// parseDocument validates the bytes as a JSON document
func parseDocument(data []byte) (json.RawMessage, error) {
	var doc json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
