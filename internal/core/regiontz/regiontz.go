// Package regiontz maps ISO 3166 region codes to a representative IANA
// timezone. Multi zone countries get a single representative zone, which is
// an accepted approximation for interpreting user supplied calendar dates
package regiontz

import (
	"strings"
	"time"
)

// UTC is the fallback zone for unknown or empty region codes
const UTC = "UTC"

// zones is immutable after init; lookups are read only and safe for
// concurrent use
var zones = map[string]string{
	// North America
	"US": "America/New_York",
	"CA": "America/Toronto",
	"MX": "America/Mexico_City",

	// Europe
	"UK": "Europe/London",
	"GB": "Europe/London",
	"FR": "Europe/Paris",
	"DE": "Europe/Berlin",
	"IT": "Europe/Rome",
	"ES": "Europe/Madrid",
	"NL": "Europe/Amsterdam",
	"SE": "Europe/Stockholm",
	"NO": "Europe/Oslo",
	"DK": "Europe/Copenhagen",
	"FI": "Europe/Helsinki",
	"PL": "Europe/Warsaw",
	"CH": "Europe/Zurich",
	"AT": "Europe/Vienna",
	"BE": "Europe/Brussels",
	"IE": "Europe/Dublin",
	"PT": "Europe/Lisbon",
	"GR": "Europe/Athens",
	"CZ": "Europe/Prague",
	"RO": "Europe/Bucharest",

	// Asia Pacific
	"JP": "Asia/Tokyo",
	"CN": "Asia/Shanghai",
	"IN": "Asia/Kolkata",
	"KR": "Asia/Seoul",
	"AU": "Australia/Sydney",
	"NZ": "Pacific/Auckland",
	"SG": "Asia/Singapore",
	"HK": "Asia/Hong_Kong",
	"TW": "Asia/Taipei",
	"TH": "Asia/Bangkok",
	"MY": "Asia/Kuala_Lumpur",
	"PH": "Asia/Manila",
	"ID": "Asia/Jakarta",
	"VN": "Asia/Ho_Chi_Minh",
	"PK": "Asia/Karachi",
	"BD": "Asia/Dhaka",

	// Middle East
	"AE": "Asia/Dubai",
	"SA": "Asia/Riyadh",
	"IL": "Asia/Jerusalem",
	"TR": "Europe/Istanbul",

	// South America
	"BR": "America/Sao_Paulo",
	"AR": "America/Argentina/Buenos_Aires",
	"CL": "America/Santiago",
	"CO": "America/Bogota",
	"PE": "America/Lima",
	"VE": "America/Caracas",

	// Africa
	"ZA": "Africa/Johannesburg",
	"EG": "Africa/Cairo",
	"NG": "Africa/Lagos",
	"KE": "Africa/Nairobi",
}

// Resolve returns the IANA zone name for a region code
// Lookup is case insensitive; unknown or empty codes resolve to UTC so the
// function is total and never fails
func Resolve(code string) string {
	if z, ok := zones[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return z
	}
	return UTC
}

// Location resolves code and loads the zone
// A zone name missing from the host tzdata falls back to time.UTC rather
// than erroring, matching the availability over precision policy
func Location(code string) *time.Location {
	loc, err := time.LoadLocation(Resolve(code))
	if err != nil {
		return time.UTC
	}
	return loc
}
