package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile("[^a-z0-9-]")
	slugHyphens = regexp.MustCompile("-+")
)

// turkishASCII folds Turkish letters before slugging so "Çay Bahçesi"
// becomes "cay-bahcesi" rather than "ay-bahesi".
var turkishASCII = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
)

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	s = turkishASCII.Replace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
