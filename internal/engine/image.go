package engine

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"virtual-ta/internal/gemini"
)

// decodeImage turns a base64 image payload into an attachment for the
// generator. A malformed or non-image payload is logged and dropped;
// the question is still answered from text alone.
func (e *Engine) decodeImage(b64 string) *gemini.Image {
	if b64 == "" {
		return nil
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		e.log.Error("decoding image attachment", "error", err)
		return nil
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		e.log.Error("attachment is not an image", "detected", mt.String())
		return nil
	}

	e.log.Info("processed image attachment", "mime", mt.String(), "bytes", len(data))
	return &gemini.Image{Data: data, MIME: mt.String()}
}
