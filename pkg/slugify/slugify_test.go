package slugify

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestMake(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Groupe Atlas", "groupe-atlas"},
		{"Énergie & Environnement", "energie-environnement"},
		{"Combien ça coûte ?", "combien-ca-coute"},
		{"  --Déjà   vu!--  ", "deja-vu"},
		{"Stratégie 2030", "strategie-2030"},
		{"élévation", "elevation"},
		{"C'est l'été", "c-est-l-ete"},
		{"ŒUVRES", "uvres"}, // Œ n'est pas une lettre accentuée décomposable
		{"!!!", ""},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Make(c.input), "entrée: %q", c.input)
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{
		"Groupe Atlas", "Énergie & Environnement", "déjà-vu", "2024", "ça va ?",
	}
	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once), "slugify doit être idempotent pour %q", in)
	}
}

func TestMakeAlphabet(t *testing.T) {
	inputs := []string{
		"Groupe Atlas", "Énergie & Environnement", "C'est l'été", "N°42 — bis",
		"Ünïcôdé pârtøut", "tabs\tand\nnewlines",
	}
	for _, in := range inputs {
		got := Make(in)
		if got == "" {
			continue
		}
		assert.True(t, slugPattern.MatchString(got), "slug %q hors alphabet (entrée %q)", got, in)
	}
}
