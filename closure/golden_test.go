package closure

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/cottand/wcka/term"
)

// regenerate with: go test ./closure -update
func TestSystemRendering(t *testing.T) {
	system, err := System(term.NewParallel(a, term.NewStar(b)))
	assert.NoError(t, err)

	var sb strings.Builder
	for _, iq := range system {
		sb.WriteString(iq.String())
		sb.WriteString("\n")
	}

	g := goldie.New(t)
	g.Assert(t, "system_a_par_bstar", []byte(sb.String()))
}
