package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapKeepsSentinel(t *testing.T) {
	wrapped := Wrap(errSentinel, "while loading")

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, "while loading: sentinel", wrapped.Error())
}

func TestWithStackAddsTrace(t *testing.T) {
	err := WithStack(errSentinel)

	assert.True(t, Is(err, errSentinel))
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWithStackAddsTrace")
}

func TestJoin(t *testing.T) {
	other := New("other")
	err := Join(errSentinel, other)

	assert.True(t, Is(err, errSentinel))
	assert.True(t, Is(err, other))
}
