package genogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify_ValidGraph(t *testing.T) {
	g := Graph{Nodes: []Node{
		{Key: "a", Spouses: []string{"b"}},
		{Key: "b", Spouses: []string{"a"}},
		{Key: "c", Parents: []string{"a", "b"}},
	}}
	assert.Empty(t, Verify(g))
}

func TestVerify_ReportsViolations(t *testing.T) {
	g := Graph{Nodes: []Node{
		{Key: "a", Spouses: []string{"b"}, Parents: []string{"a"}},
		{Key: "b"},
		{Key: "c", Spouses: []string{"c"}, Parents: []string{"ghost"}},
		{Key: "c"},
	}}

	errs := Verify(g)
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}

	assert.Contains(t, msgs, `node "c" appears 2 times`)
	assert.Contains(t, msgs, `node "a" lists itself as parent`)
	assert.Contains(t, msgs, `node "c" lists itself as spouse`)
	assert.Contains(t, msgs, `node "c" references missing parent "ghost"`)
	assert.Contains(t, msgs, `spouse link "a" -> "b" is not symmetric`)
}

func TestVerify_MissingSpouse(t *testing.T) {
	errs := Verify(Graph{Nodes: []Node{{Key: "a", Spouses: []string{"z"}}}})
	assert.Len(t, errs, 1)
}
