package assets

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AttachIsIdempotent(t *testing.T) {
	r := NewRegistry()

	r.Attach("nexus.flexslider")
	r.Attach("nexus.flexslider")
	r.Attach("nexus.flexslider")

	attached := r.Attached()
	require.Len(t, attached, 1)
	assert.Equal(t, "nexus.flexslider", attached[0].ID)
	assert.NotEmpty(t, attached[0].Scripts)
	assert.NotEmpty(t, attached[0].Styles)
}

func TestRegistry_AttachOrderPreserved(t *testing.T) {
	r := NewRegistry()
	r.Define(Bundle{ID: "a"})
	r.Define(Bundle{ID: "b"})

	r.Attach("b")
	r.Attach("a")
	r.Attach("b")

	attached := r.Attached()
	require.Len(t, attached, 2)
	assert.Equal(t, "b", attached[0].ID)
	assert.Equal(t, "a", attached[1].ID)
}

func TestRegistry_UnknownBundleStillRecorded(t *testing.T) {
	r := NewRegistry()

	r.Attach("never.defined")

	attached := r.Attached()
	require.Len(t, attached, 1)
	assert.Equal(t, "never.defined", attached[0].ID)
	assert.Empty(t, attached[0].Scripts)
}

func TestRegistry_Reset(t *testing.T) {
	r := NewRegistry()
	r.Attach("nexus.flexslider")
	r.Reset()

	assert.Empty(t, r.Attached())

	// Definitions survive a reset.
	r.Attach("nexus.flexslider")
	attached := r.Attached()
	require.Len(t, attached, 1)
	assert.NotEmpty(t, attached[0].Scripts)
}

func TestRegistry_ConcurrentAttach(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Attach("nexus.flexslider")
		}()
	}
	wg.Wait()

	assert.Len(t, r.Attached(), 1)
}
