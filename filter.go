package social

import "reflect"

// Field keys shared by several record kinds.
const (
	KeyId                  = "id"
	KeyUserId              = "userId"
	KeyMemberTypeId        = "memberTypeId"
	KeySubscribedToUserIds = "subscribedToUserIds"
)

type FilterKind byte

const (
	// Field equals Value.
	FilterEquals FilterKind = 1
	// Value is an element of the []string field.
	FilterContains FilterKind = 2
)

// Filter narrows a scan to records whose field Key satisfies Kind against Value.
type Filter struct {
	Kind  FilterKind
	Key   string
	Value interface{}
}

func Equals(key string, value interface{}) Filter {
	return Filter{Kind: FilterEquals, Key: key, Value: value}
}

func Contains(key string, value string) Filter {
	return Filter{Kind: FilterContains, Key: key, Value: value}
}

// Match reports whether e satisfies the filter. Unknown keys never match.
func (f Filter) Match(e Entity) bool {
	field, ok := e.Field(f.Key)
	if !ok {
		return false
	}
	switch f.Kind {
	case FilterEquals:
		return reflect.DeepEqual(field, f.Value)
	case FilterContains:
		list, ok := field.([]string)
		if !ok {
			return false
		}
		value, ok := f.Value.(string)
		if !ok {
			return false
		}
		for _, item := range list {
			if item == value {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// MatchAll reports whether e satisfies every filter. No filters match everything.
func MatchAll(e Entity, filters []Filter) bool {
	for _, f := range filters {
		if !f.Match(e) {
			return false
		}
	}
	return true
}
