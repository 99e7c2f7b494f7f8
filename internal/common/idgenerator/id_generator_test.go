package idgenerator_test

import (
	"regexp"
	"testing"

	"bitbucket.org/Amartha/go-savings-engine/internal/common/idgenerator"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	t.Run("created new id with prefix", func(t *testing.T) {
		generator := idgenerator.New()
		id := generator.Generate("TRX")
		assert.NotNil(t, id)
		assert.Regexp(t, regexp.MustCompile("^TRX-"), id)
	})

	t.Run("created new id with composite prefix", func(t *testing.T) {
		generator := idgenerator.New()
		id := generator.Generate("TRX", "INT")
		assert.Regexp(t, regexp.MustCompile("^TRX-INT-"), id)
	})

	t.Run("created new id without prefix", func(t *testing.T) {
		generator := idgenerator.New()
		id := generator.Generate()
		assert.NotNil(t, id)
		assert.NotRegexp(t, regexp.MustCompile("^-"), id)
	})

	t.Run("ids are unique", func(t *testing.T) {
		generator := idgenerator.New()
		a := generator.Generate("TRX")
		b := generator.Generate("TRX")
		assert.NotEqual(t, a, b)
	})
}
