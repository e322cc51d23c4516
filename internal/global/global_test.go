package global

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yekhlakov/eli-go/internal/value"
)

func TestGetSet(t *testing.T) {
	g := New()
	_, ok := g.Get("x")
	assert.False(t, ok)

	g.Set("x", value.NewAtom("41"))
	v, ok := g.Get("x")
	assert.True(t, ok)
	assert.Equal(t, "41", v.Print())
}

func TestConcurrentDefIsObservedAfterReturn(t *testing.T) {
	g := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			g.Set("counter", value.NewInt(int64(n)))
		}(i)
	}
	wg.Wait()

	_, ok := g.Get("counter")
	assert.True(t, ok)
}
