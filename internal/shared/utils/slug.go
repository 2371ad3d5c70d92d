package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultAvatar is the placeholder asset assigned to authors that never
// uploaded a picture.
const DefaultAvatar = "static/library/author/default.png"

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphen  = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe identifier from arbitrary text.
// The result contains only [a-z0-9-] and the function is idempotent:
// Slugify(Slugify(x)) == Slugify(x). Uniqueness is enforced at the
// storage layer, not here.
func Slugify(input string) string {
	// "Crème Brûlée" → "Creme Brulee"
	ascii := foldDiacritics(input)

	lower := strings.ToLower(ascii)

	// "creme brulee" → "creme-brulee"
	hyphenated := strings.ReplaceAll(lower, " ", "-")

	cleaned := nonSlugChars.ReplaceAllString(hyphenated, "")

	// "creme--brulee" → "creme-brulee"
	normalized := multiHyphen.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}

// AvatarUploadPath namespaces uploaded avatar files per author:
// static/library/author/<userName>/<filename>. Pure path computation,
// no filesystem access.
func AvatarUploadPath(userName, filename string) string {
	return fmt.Sprintf("static/library/author/%s/%s", userName, filename)
}

// foldDiacritics maps accented latin characters to their base character
// so that slugs stay ASCII.
func foldDiacritics(input string) string {
	mappings := map[rune]rune{
		'á': 'a', 'à': 'a', 'â': 'a', 'ä': 'a', 'ã': 'a', 'å': 'a', 'ą': 'a',
		'ç': 'c', 'ć': 'c', 'č': 'c',
		'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e', 'ę': 'e', 'ě': 'e',
		'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
		'ł': 'l',
		'ñ': 'n', 'ń': 'n',
		'ó': 'o', 'ò': 'o', 'ô': 'o', 'ö': 'o', 'õ': 'o', 'ø': 'o',
		'ś': 's', 'š': 's',
		'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u', 'ů': 'u',
		'ý': 'y', 'ÿ': 'y',
		'ź': 'z', 'ż': 'z', 'ž': 'z',
		'ß': 's', 'đ': 'd',

		'Á': 'A', 'À': 'A', 'Â': 'A', 'Ä': 'A', 'Ã': 'A', 'Å': 'A', 'Ą': 'A',
		'Ç': 'C', 'Ć': 'C', 'Č': 'C',
		'É': 'E', 'È': 'E', 'Ê': 'E', 'Ë': 'E', 'Ę': 'E', 'Ě': 'E',
		'Í': 'I', 'Ì': 'I', 'Î': 'I', 'Ï': 'I',
		'Ł': 'L',
		'Ñ': 'N', 'Ń': 'N',
		'Ó': 'O', 'Ò': 'O', 'Ô': 'O', 'Ö': 'O', 'Õ': 'O', 'Ø': 'O',
		'Ś': 'S', 'Š': 'S',
		'Ú': 'U', 'Ù': 'U', 'Û': 'U', 'Ü': 'U', 'Ů': 'U',
		'Ý': 'Y',
		'Ź': 'Z', 'Ż': 'Z', 'Ž': 'Z',
		'Đ': 'D',
	}

	result := make([]rune, 0, len(input))
	for _, r := range input {
		if replacement, ok := mappings[r]; ok {
			result = append(result, replacement)
		} else {
			result = append(result, r)
		}
	}

	return string(result)
}
