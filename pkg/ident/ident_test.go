package ident_test

import (
	"testing"

	"github.com/safebite/safebite/pkg/ident"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare slug unchanged", "palm-oil", "palm-oil"},
		{"lowercases", "Palm-Oil", "palm-oil"},
		{"strips language prefix", "en:palm-oil", "palm-oil"},
		{"strips french prefix", "fr:huile-de-palme", "huile-de-palme"},
		{"strips variant suffix", "milk,-dried-milk", "milk"},
		{"prefix and suffix together", "en:milk,-dried-milk", "milk"},
		{"three letter prefix kept", "xxx:milk", "xxx:milk"},
		{"colon without prefix shape kept", "e621:", "e621:"},
		{"empty string", "", ""},
		{"plain comma kept", "salt,pepper", "salt,pepper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ident.Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	ids := []string{
		"en:palm-oil",
		"milk,-dried-milk",
		"fr:lait,-en-poudre",
		"monosodium-glutamate",
		"",
	}
	for _, id := range ids {
		once := ident.Normalize(id)
		assert.Equal(t, once, ident.Normalize(once), "id %q", id)
	}
}
