package catalog

import (
	"errors"
	"fmt"
)

// Kind classifies why a catalog could not be loaded or saved.
type Kind int

const (
	// KindIO means the byte source or sink could not be read or written.
	KindIO Kind = iota + 1

	// KindEmptyDocument means the document has no root element.
	KindEmptyDocument

	// KindInvalidTag means an element's tag is not the one expected at its depth.
	KindInvalidTag

	// KindMissingAttribute means an element lacks a required attribute.
	KindMissingAttribute

	// KindInvalidAttribute means an attribute is not allowed on its element,
	// or its value does not convert to the expected type.
	KindInvalidAttribute
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindEmptyDocument:
		return "empty document"
	case KindInvalidTag:
		return "invalid tag"
	case KindMissingAttribute:
		return "missing attribute"
	case KindInvalidAttribute:
		return "invalid attribute"
	default:
		return "unknown"
	}
}

// Error is returned by every failing Load, Read and Save. No catalog is
// produced alongside an Error.
type Error struct {
	Kind Kind

	// Tag is the offending element's tag, or the element carrying the
	// offending attribute.
	Tag string

	// Attribute is the offending attribute name.
	Attribute string

	// Value is the attribute value that failed conversion, if any.
	Value string

	// Err is the underlying cause: an I/O or document read error, or a
	// number conversion error.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindIO:
		return fmt.Sprintf("io error: %v", e.Err)
	case KindEmptyDocument:
		return "database file is empty"
	case KindInvalidTag:
		return fmt.Sprintf("invalid tag %s", e.Tag)
	case KindMissingAttribute:
		return fmt.Sprintf("missing attribute %s in %s", e.Attribute, e.Tag)
	case KindInvalidAttribute:
		if e.Err != nil {
			return fmt.Sprintf("invalid attribute %s in tag %s: value %q", e.Attribute, e.Tag, e.Value)
		}
		return fmt.Sprintf("invalid attribute %s in tag %s", e.Attribute, e.Tag)
	default:
		return "catalog error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the per-kind sentinels, so errors.Is(err, ErrInvalidTag) holds
// for any invalid tag regardless of which tag it was.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Tag == "" && t.Attribute == "" && t.Err == nil
}

// Sentinels for errors.Is.
var (
	ErrIO               = &Error{Kind: KindIO}
	ErrEmptyDocument    = &Error{Kind: KindEmptyDocument}
	ErrInvalidTag       = &Error{Kind: KindInvalidTag}
	ErrMissingAttribute = &Error{Kind: KindMissingAttribute}
	ErrInvalidAttribute = &Error{Kind: KindInvalidAttribute}
)

// KindOf returns the Kind of a catalog error, or 0 when err is not one.
func KindOf(err error) Kind {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Kind
	}
	return 0
}

func ioError(err error) *Error {
	return &Error{Kind: KindIO, Err: err}
}

func invalidTag(tag string) *Error {
	return &Error{Kind: KindInvalidTag, Tag: tag}
}

func missingAttribute(attr, tag string) *Error {
	return &Error{Kind: KindMissingAttribute, Attribute: attr, Tag: tag}
}

func invalidAttribute(attr, tag string) *Error {
	return &Error{Kind: KindInvalidAttribute, Attribute: attr, Tag: tag}
}
