package mapper

import "github.com/leadbridge/dialer-sync-api/internal/domain"

// MapTags resolves the tag list for a disposition code using the tenant's
// ordered rules. The first rule whose disposition set contains the literal
// code contributes its tag and ends the scan, so at most one mapped tag is
// returned. An empty code or no match falls back to the default tag; the
// result is never empty.
func MapTags(disposition string, rules domain.TagRules) []string {
	if disposition != "" {
		for _, rule := range rules {
			for _, code := range rule.Dispositions {
				if code == disposition {
					return []string{rule.Tag}
				}
			}
		}
	}
	return []string{domain.DefaultTag}
}
