// Package header implements parsing of structured message header field values.
package header

import (
	"io"
	"slices"

	"github.com/ghettovoice/gomime/internal/util"
)

// Kind discriminates the shape of a parsed header field value.
type Kind uint8

const (
	// KindEmpty is a field with no significant content.
	KindEmpty Kind = iota
	// KindText is a single logical text value.
	KindText
	// KindTextList is an ordered list of text values.
	KindTextList
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindTextList:
		return "text-list"
	default:
		return "unknown"
	}
}

// Value is the parsed form of a header field value: nothing, a single
// logical text value, or an ordered list of text values. Exactly one of
// Text and List is populated, according to Kind.
type Value struct {
	Kind Kind
	Text string   // set when Kind is KindText
	List []string // set when Kind is KindTextList
}

// EmptyValue returns the empty field value.
func EmptyValue() Value { return Value{} }

// TextValue returns a single-text field value.
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// ListValue returns a list field value with the given entries.
func ListValue(vs ...string) Value { return Value{Kind: KindTextList, List: vs} }

// IsEmpty reports whether the value carries no content.
func (v Value) IsEmpty() bool { return v.Kind == KindEmpty }

// Strings returns all entries of the value in order: nil when empty, a
// single-element slice for a text value, the list itself otherwise.
func (v Value) Strings() []string {
	switch v.Kind {
	case KindText:
		return []string{v.Text}
	case KindTextList:
		return v.List
	default:
		return nil
	}
}

// RenderTo writes the value in its on-wire form, list entries separated
// by ", ".
func (v Value) RenderTo(w io.Writer) error {
	for i, entry := range v.Strings() {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, entry); err != nil {
			return err
		}
	}
	return nil
}

// Render returns the value in its on-wire form.
func (v Value) Render() string {
	switch v.Kind {
	case KindEmpty:
		return ""
	case KindText:
		return v.Text
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	_ = v.RenderTo(sb)
	return sb.String()
}

func (v Value) String() string { return v.Render() }

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	v.List = slices.Clone(v.List)
	return v
}

// Equal reports whether val is a [Value] or *[Value] equal to v.
func (v Value) Equal(val any) bool {
	var other Value
	switch o := val.(type) {
	case Value:
		other = o
	case *Value:
		if o == nil {
			return false
		}
		other = *o
	default:
		return false
	}
	return v.Kind == other.Kind &&
		v.Text == other.Text &&
		slices.Equal(v.List, other.List)
}
