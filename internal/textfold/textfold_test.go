package textfold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold_CaseAndWhitespace(t *testing.T) {
	assert.Equal(t, "hijo/a", Fold("  Hijo/A "))
	assert.Equal(t, Fold("CÓNYUGE"), Fold("cónyuge"))
}

func TestEqual_ComposedAndDecomposed(t *testing.T) {
	composed := "c\u00f3nyuge"
	decomposed := "co\u0301nyuge"
	assert.NotEqual(t, composed, decomposed)
	assert.True(t, Equal(composed, decomposed))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Visita con ANA y su hijo", "Ana"))
	assert.False(t, Contains("Visita con Anabel", "Luis"))
	assert.False(t, Contains("cualquier texto", ""))
	assert.False(t, Contains("cualquier texto", "   "))
}
