package rfc2047

import (
	"braces.dev/errtrace"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/ghettovoice/gomime/internal/errorutil"
	"github.com/ghettovoice/gomime/internal/util"
)

func newUnknownCharsetErr(args ...any) error {
	return errorutil.NewWrapperError(ErrUnknownCharset, args...) //errtrace:skip
}

// decodeCharset converts payload from the named charset to a UTF-8 string.
//
// Conversion never fails once the charset is resolved: invalid or
// unmappable sequences degrade to replacement characters instead of
// aborting the decode.
func decodeCharset(charset string, payload []byte) (string, error) {
	switch util.LCase(charset) {
	case "utf-8", "utf8", "us-ascii", "ascii":
		return util.LossyString(payload), nil
	}

	enc, err := ianaindex.MIME.Encoding(charset)
	if err != nil || enc == nil {
		return "", errtrace.Wrap(newUnknownCharsetErr(charset))
	}

	text, err := enc.NewDecoder().Bytes(payload)
	if err != nil {
		return util.LossyString(payload), nil
	}
	return util.LossyString(text), nil
}
