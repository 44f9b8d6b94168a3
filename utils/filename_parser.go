package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	imageExtRegex = regexp.MustCompile(`(?i)\.(png|jpg|jpeg|webp)$`)
	slugRegex     = regexp.MustCompile(`[^a-z0-9]+`)
)

// accents maps the Portuguese accented letters to their plain form for slugs
var accents = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

// Slugify lowercases s, strips accents and replaces anything that is not a
// letter or digit by a single hyphen
// Example: "Pizza Meia Calabresa!" -> "pizza-meia-calabresa"
func Slugify(s string) string {
	lower := accents.Replace(strings.ToLower(strings.TrimSpace(s)))
	return strings.Trim(slugRegex.ReplaceAllString(lower, "-"), "-")
}

// BuildImageFileName validates an uploaded image name and builds the stored name:
// SLUG-YYYYMMDDHHMMSS.jpg (uploads are always re-encoded to JPEG)
// Example: "Foto Calabresa.PNG" -> "foto-calabresa-20260105103000.jpg"
func BuildImageFileName(original string, now time.Time) (string, error) {
	if !imageExtRegex.MatchString(original) {
		return "", fmt.Errorf("invalid image file name %q: expected .png, .jpg, .jpeg or .webp", original)
	}

	slug := Slugify(imageExtRegex.ReplaceAllString(original, ""))
	if slug == "" {
		slug = "imagem"
	}
	return fmt.Sprintf("%s-%s.jpg", slug, now.UTC().Format("20060102150405")), nil
}
