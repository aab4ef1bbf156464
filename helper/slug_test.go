package helper

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World!  2024":     "hello-world-2024",
		"  Leading and trailing ": "leading-and-trailing",
		"Go & SQL":                "go-sql",
		"already-a-slug":          "already-a-slug",
		"Ünïcode Tïtle":           "n-code-t-tle",
		"!!!":                     "",
		"":                        "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestSlugifyIsIdempotentAndWellFormed(t *testing.T) {
	shape := regexp.MustCompile(`^([a-z0-9]+(-[a-z0-9]+)*)?$`)
	inputs := []string{"Hello, World!  2024", "--a--b--", "C++ / Go", "AI & ML", "x"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once))
		assert.Regexp(t, shape, once)
	}
}
