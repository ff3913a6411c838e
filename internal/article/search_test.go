package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchPredicate(t *testing.T) {
	predicate, args := BuildSearchPredicate("   ")
	assert.Empty(t, predicate)
	assert.Nil(t, args)

	predicate, args = BuildSearchPredicate("讲座  报名")
	assert.Equal(t,
		`(title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\') AND `+
			`(title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\')`,
		predicate)
	assert.Equal(t, []any{"%讲座%", "%讲座%", "%讲座%", "%报名%", "%报名%", "%报名%"}, args)
}

func TestBuildSearchPredicateEscapesWildcards(t *testing.T) {
	_, args := BuildSearchPredicate(`100%_off\`)
	assert.Equal(t, `%100\%\_off\\%`, args[0])
}
