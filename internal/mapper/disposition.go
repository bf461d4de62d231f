// Package mapper holds the pure translation logic between dialer
// vocabulary and CRM vocabulary: disposition labels, tag rules, phone
// normalization, and custom field projection.
package mapper

import "strings"

type dispositionEntry struct {
	code  string
	label string
}

// dispositionTable maps dialer status codes to human labels. Matching is
// case-insensitive prefix match in declaration order, so entries must be
// listed before any entry that is a prefix of them: "ADC" before "A",
// "NA"/"NI"/"NEW" before "N". Reordering this table changes results.
var dispositionTable = []dispositionEntry{
	{"ADC", "No Answer"},
	{"DROP", "No Answer"},
	{"NA", "No Answer"},
	{"NEW", "New Lead"},
	{"NI", "Not Interested"},
	{"N", "No Answer"},
	{"CALLBK", "Call Back"},
	{"CBHOLD", "Call Back"},
	{"DNC", "Do Not Call"},
	{"DEC", "Declined Sale"},
	{"DC", "Disconnected Number"},
	{"B", "Busy"},
	{"AM", "Answering Machine"},
	{"AB", "Busy"},
	{"A", "Answering Machine"},
	{"PU", "Call Picked Up"},
	{"SALE", "Sale Made"},
	{"XFER", "Call Transferred"},
	{"VM", "Voicemail"},
	{"WN", "Wrong Number"},
	{"LB", "Language Barrier"},
}

// TranslateDisposition turns a dialer status code into a human label.
// The first table entry whose code is a prefix of the upper-cased input
// wins. Unknown or empty codes translate to "", never an error.
func TranslateDisposition(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	for _, entry := range dispositionTable {
		if strings.HasPrefix(code, entry.code) {
			return entry.label
		}
	}
	return ""
}
