package fields

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// PhoneFormatter renders a raw phone match into display form. Formatters
// receive whatever the phone pattern matched and must return something
// printable even for input they cannot parse.
type PhoneFormatter func(raw string) string

// NationalPhoneFormatter returns a formatter backed by libphonenumber
// that renders numbers in the national convention of region, an ISO
// 3166-1 alpha-2 code such as "US" or "FR". Input that does not parse as
// a number for that region comes back trimmed but otherwise untouched.
func NationalPhoneFormatter(region string) PhoneFormatter {
	return func(raw string) string {
		raw = strings.TrimSpace(raw)
		num, err := phonenumbers.Parse(raw, region)
		if err != nil {
			return raw
		}
		return phonenumbers.Format(num, phonenumbers.NATIONAL)
	}
}
