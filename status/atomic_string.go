package status

import (
	"sync/atomic"
)

// MaxStringLen is the maximum length in bytes for atomic strings
const MaxStringLen = 24

// AtomicString provides atomic string access with fixed max length
// Zero value is ready to use (represents empty string)
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the string value, truncating to MaxStringLen on a rune boundary
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

// Load returns the current string value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// utf8RuneStart reports whether b can begin a UTF-8 sequence
func utf8RuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
