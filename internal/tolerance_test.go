package internal

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestLerp(t *testing.T) {
	test.Float(t, Lerp(2, 4, 0), 2)
	test.Float(t, Lerp(2, 4, 0.25), 2.5)
	test.Float(t, Lerp(2, 4, 1), 4)
	test.Float(t, Lerp(2, 4, 1.5), 5)
}

func TestClampInt(t *testing.T) {
	test.T(t, ClampInt(-3, 0, 10), 0)
	test.T(t, ClampInt(4, 0, 10), 4)
	test.T(t, ClampInt(12, 0, 10), 10)
}
