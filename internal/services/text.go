package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// displayName renders an enum value such as "tamil_nadu" or "durga" as
// "Tamil Nadu" or "Durga" for prompts and user-facing text.
func displayName(v string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(v, "_", " "))
}
