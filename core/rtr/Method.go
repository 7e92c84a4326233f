package rtr

import "github.com/rohanthewiz/rmux/consts"

// Method is a bitmask identifying one of the six routable HTTP methods.
// Each method occupies its own bit so a single integer can describe a set
// of methods (route listings use this; lookups always pass a single bit).
//
// The set is fixed - there is no registration mechanism for further methods.
type Method uint8

const (
	MethodGet Method = 1 << iota
	MethodPost
	MethodPut
	MethodDelete
	MethodPatch
	MethodOptions
)

// Methods enumerates every routable method in declaration order.
var Methods = [...]Method{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodPatch,
	MethodOptions,
}

// ParseMethod maps a canonical method string to its bit.
// Strings outside the six routable methods report false;
// the dispatcher treats those requests as unroutable.
func ParseMethod(method string) (Method, bool) {
	switch method {
	case consts.MethodGet:
		return MethodGet, true
	case consts.MethodPost:
		return MethodPost, true
	case consts.MethodPut:
		return MethodPut, true
	case consts.MethodDelete:
		return MethodDelete, true
	case consts.MethodPatch:
		return MethodPatch, true
	case consts.MethodOptions:
		return MethodOptions, true
	default:
		return 0, false
	}
}

// String returns the canonical string for a single-bit Method.
// Multi-bit masks and the zero value return an empty string - use Split
// when a value may carry more than one bit.
func (m Method) String() string {
	switch m {
	case MethodGet:
		return consts.MethodGet
	case MethodPost:
		return consts.MethodPost
	case MethodPut:
		return consts.MethodPut
	case MethodDelete:
		return consts.MethodDelete
	case MethodPatch:
		return consts.MethodPatch
	case MethodOptions:
		return consts.MethodOptions
	default:
		return ""
	}
}

// Split expands a possibly multi-bit mask into its single-bit members,
// in declaration order.
func (m Method) Split() (members []Method) {
	for _, method := range Methods {
		if m&method != 0 {
			members = append(members, method)
		}
	}
	return
}

// Has reports whether every bit of member is present in m.
func (m Method) Has(member Method) bool {
	return m&member == member && member != 0
}
