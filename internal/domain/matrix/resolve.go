package matrix

import (
	"regexp"
	"strings"
)

var (
	reAmpersand  = regexp.MustCompile(`\s*&\s*`)
	reWhitespace = regexp.MustCompile(`\s+`)
	reNonSlug    = regexp.MustCompile(`[^a-z0-9_]`)
	reUnderscore = regexp.MustCompile(`_+`)
)

// CleanKey normalizes a column name or short key to the slug format the
// catalog uses: lowercase, "&" spelled out, whitespace runs collapsed to a
// single underscore, everything outside [a-z0-9_] stripped.
func CleanKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = reAmpersand.ReplaceAllString(s, " and ")
	s = reWhitespace.ReplaceAllString(s, "_")
	s = reNonSlug.ReplaceAllString(s, "")
	s = reUnderscore.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// ResolveSkillValue finds the raw proficiency text for a skill in a row whose
// keys are not guaranteed to match the catalog slug exactly. Lookup order,
// first hit wins:
//  1. exact short key
//  2. cleaned short key
//  3. scan of every row key, comparing lowercased and cleaned forms
//
// A miss is absent, which is distinct from a present-but-unclassifiable
// value; the caller classifies the returned text separately.
func ResolveSkillValue(row CompanyRow, skill SkillDefinition) (string, bool) {
	if v, ok := presentValue(row.Levels, skill.ShortKey); ok {
		return v, true
	}
	if v, ok := presentValue(row.Levels, CleanKey(skill.ShortKey)); ok {
		return v, true
	}

	lowered := strings.ToLower(skill.ShortKey)
	cleaned := CleanKey(skill.ShortKey)
	for k, v := range row.Levels {
		if v == nil || strings.TrimSpace(*v) == "" {
			continue
		}
		if strings.ToLower(k) == lowered || CleanKey(k) == cleaned {
			return *v, true
		}
	}
	return "", false
}

func presentValue(levels map[string]*string, key string) (string, bool) {
	v, ok := levels[key]
	if !ok || v == nil {
		return "", false
	}
	if strings.TrimSpace(*v) == "" {
		return "", false
	}
	return *v, true
}
