package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteLines(t *testing.T) {
	lines := []string{"package main", "", "func main() {}"}

	t.Run("plain", func(t *testing.T) {
		var out bytes.Buffer
		err := writeLines(&out, lines, Configuration{Format: FORMAT_PLAIN})

		assert.NoError(t, err)
		assert.Equal(t, "package main\n\nfunc main() {}\n", out.String())
	})

	t.Run("no lines", func(t *testing.T) {
		var out bytes.Buffer
		err := writeLines(&out, []string{}, Configuration{Format: FORMAT_PLAIN})

		assert.NoError(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("numbered keeps empty lines", func(t *testing.T) {
		var out bytes.Buffer
		err := writeLines(&out, lines, Configuration{Format: FORMAT_NUMBERED})

		assert.NoError(t, err)
		assert.Equal(t, "1\tpackage main\n2\t\n3\tfunc main() {}\n", out.String())
	})

	t.Run("highlighted", func(t *testing.T) {
		var out bytes.Buffer
		err := writeLines(&out, lines, Configuration{Format: FORMAT_PLAIN, Highlight: "go", Style: "dracula"})

		assert.NoError(t, err)
		assert.Contains(t, out.String(), "\x1b[")
		assert.Contains(t, out.String(), "package")
	})
}

func TestWriteCount(t *testing.T) {
	var out bytes.Buffer
	err := writeCount(&out, 42)

	assert.NoError(t, err)
	assert.Equal(t, "42\n", out.String())
}
