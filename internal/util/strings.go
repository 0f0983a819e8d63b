package util

import (
	"strings"
	"sync"
	"unicode/utf8"
)

func LCase[T ~string](s T) T { return T(strings.ToLower(string(s))) }

// LossyString converts b to a UTF-8 string, replacing invalid byte
// sequences with the Unicode replacement character.
func LossyString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(1024)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
