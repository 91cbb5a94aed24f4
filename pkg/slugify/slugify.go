// Package slugify dérive un identifiant d'URL à partir d'un texte libre
// (titre, nom). Fonction pure: aucune consultation des lignes existantes,
// deux titres identiques produisent donc le même slug.
package slugify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumRuns = regexp.MustCompile(`[^a-z0-9]+`)

// diacriticsStripper décompose les caractères accentués (NFD) puis retire
// les marques combinantes, avant de recomposer (NFC).
var diacriticsStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Make produit le slug d'un texte: minuscules, accents retirés, toute suite
// de caractères hors [a-z0-9] réduite à un tiret, tirets de bord supprimés.
// Le résultat correspond à ^[a-z0-9]+(-[a-z0-9]+)*$ ou est vide.
func Make(input string) string {
	lowered := strings.ToLower(input)

	stripped, _, err := transform.String(diacriticsStripper, lowered)
	if err != nil {
		// Entrée non transformable (UTF-8 invalide): on continue avec le
		// texte en minuscules, le filtre regex retire le reste.
		stripped = lowered
	}

	hyphenated := nonAlphanumRuns.ReplaceAllString(stripped, "-")
	return strings.Trim(hyphenated, "-")
}
