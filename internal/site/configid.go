package site

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"

	ferrors "git.home.luguber.info/inful/sitecompose/internal/foundation/errors"
)

// computeConfigID derives a version 5 UUID from the canonical JSON of the rendered
// configuration and the composition year, namespaced by the site address.
func computeConfigID(cfg *SiteConfig) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	payload := map[string]any{"year": cfg.year, "config": cfg.Document(PluginTuples)}
	if err := enc.Encode(payload); err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryEncoding, "encode configuration for id").Build()
	}
	ns := uuid.NewSHA1(uuid.NameSpaceURL, []byte(cfg.identity.URL+cfg.identity.BaseURL))
	return uuid.NewSHA1(ns, buf.Bytes()).String(), nil
}
