package domain

import "strings"

// Metadata holds the six personal answers mixed into the derivation. All
// fields are optional; a missing answer is the empty string.
type Metadata struct {
	HouseName     string `json:"house_name"`
	PhoneSuffix   string `json:"phone_suffix"`
	CoreMemory    string `json:"core_memory"`
	HandleName    string `json:"handle_name"`
	BirthdayToken string `json:"birthday_token"`
	Custom        string `json:"custom"`
}

// MetadataFieldNames lists the field keys in canonical order. The order is
// load-bearing: normalization concatenates values in exactly this sequence.
func MetadataFieldNames() []string {
	return []string{
		"house_name",
		"phone_suffix",
		"core_memory",
		"handle_name",
		"birthday_token",
		"custom",
	}
}

// values returns the field values in canonical order.
func (m Metadata) values() []string {
	return []string{
		m.HouseName,
		m.PhoneSuffix,
		m.CoreMemory,
		m.HandleName,
		m.BirthdayToken,
		m.Custom,
	}
}

// Normalize concatenates the fields in canonical order, each trimmed of
// surrounding whitespace and lowercased, with no separator. Empty fields
// contribute nothing, so the result depends only on the values supplied.
func (m Metadata) Normalize() string {
	var b strings.Builder
	for _, v := range m.values() {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		b.WriteString(strings.ToLower(v))
	}
	return b.String()
}

// Hints returns the redacted per-field hints stored in a recovery package.
// Every field gets an entry: absent values read "Not provided", one-character
// values keep that character, everything else keeps the first two.
func (m Metadata) Hints() map[string]string {
	names := MetadataFieldNames()
	values := m.values()

	hints := make(map[string]string, len(names))
	for i, name := range names {
		hints[name] = hintFor(values[i])
	}
	return hints
}

func hintFor(value string) string {
	r := []rune(value)
	switch {
	case len(r) == 0:
		return "Not provided"
	case len(r) == 1:
		return string(r) + "..."
	default:
		return string(r[:2]) + "..."
	}
}
