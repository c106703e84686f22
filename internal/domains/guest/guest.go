// Package guest records who a staff member booked a room for when the guest has no
// member account. New bookings keep the guest in dedicated columns; rows written
// before those columns existed only carry the tag inside their notes.
package guest

import (
	"cowork/shared/constant"
	"regexp"
	"strings"
)

const Marker = "[EXTERNAL]"

var tagPattern = regexp.MustCompile(`\[EXTERNAL\]\s*Name:\s*([^|\n]*?)\s*\|\s*Email:\s*([^|\n]*?)\s*\|\s*Phone:\s*([^|\n]*?)\s*(?:\n|$)`)

type Info struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (i Info) IsEmpty() bool {
	return i.Name == constant.Empty && i.Email == constant.Empty && i.Phone == constant.Empty
}

// Extract parses the legacy notes tag. Notes without one yield an empty Info.
func Extract(notes string) Info {
	match := tagPattern.FindStringSubmatch(notes)
	if match == nil {
		return Info{}
	}

	return Info{
		Name:  match[1],
		Email: match[2],
		Phone: match[3],
	}
}

// Resolve prefers the explicit columns and falls back to the notes tag.
func Resolve(name, email, phone *string, notes string) Info {
	info := Info{
		Name:  deref(name),
		Email: deref(email),
		Phone: deref(phone),
	}

	if !info.IsEmpty() {
		return info
	}

	return Extract(notes)
}

func deref(value *string) string {
	if value == nil {
		return constant.Empty
	}

	return strings.TrimSpace(*value)
}
