package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"lowercase", "ELEKTRIKA", "elektrika"},
		{"serbian diacritics", "Čačak", "cacak"},
		{"dj letter", "Đorđe", "djordje"},
		{"punctuation to space", "Elektro-Pero!", "elektro pero"},
		{"whitespace collapse", "  pukla   cev  ", "pukla cev"},
		{"mixed", "Vodoinstalater ŽIKA, Niš", "vodoinstalater zika nis"},
		{"digits kept", "klima 12V", "klima 12v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Čišćenje klime", "Đurđevdan", "veš-mašina", "  Beograd  "}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", s)
	}
}

func TestNormalizePlace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"diacritics stripped", "Niš", "nis"},
		{"cacak", "Čačak", "cacak"},
		{"whitespace", "  Novi   Sad ", "novi sad"},
		// đ has no combining decomposition and must survive.
		{"dj kept", "Đurđevo", "đurđevo"},
		{"punctuation kept", "Beograd-Zvezdara", "beograd-zvezdara"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePlace(tt.input))
		})
	}
}
