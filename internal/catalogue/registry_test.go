package catalogue

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(name, out string) Page {
	return Page{Name: name, Run: func(w io.Writer) error {
		_, err := io.WriteString(w, out)
		return err
	}}
}

//
// -----------------------------------------------------------------------------
// NewRegistry / Provide
// -----------------------------------------------------------------------------

// TestNewRegistry_Empty verifies NewRegistry initializes an empty registry.
func TestNewRegistry_Empty(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NotNil(t, r)
	require.NotNil(t, r.pages)
	assert.Empty(t, r.Names())
}

// TestProvide_ChainsAndKeepsOrder verifies Provide returns the same registry and records insertion order.
func TestProvide_ChainsAndKeepsOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	ret := r.Provide(page("b", "B")).Provide(page("a", "A"))
	require.Same(t, r, ret)

	assert.Equal(t, []string{"b", "a"}, r.Names())
}

// TestProvide_ReplaceKeepsPosition verifies re-providing a name swaps the page in place.
func TestProvide_ReplaceKeepsPosition(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide(page("a", "1")).Provide(page("b", "2")).Provide(page("a", "3"))
	assert.Equal(t, []string{"a", "b"}, r.Names())

	var buf bytes.Buffer
	require.NoError(t, r.Run("a", &buf))
	assert.Equal(t, "3", buf.String())
}

// TestNames_ReturnsCopy verifies callers cannot reorder the registry through Names.
func TestNames_ReturnsCopy(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide(page("a", "")).Provide(page("b", ""))
	names := r.Names()
	names[0] = "zzz"

	assert.Equal(t, []string{"a", "b"}, r.Names())
}

//
// -----------------------------------------------------------------------------
// Get / MustGet
// -----------------------------------------------------------------------------

func TestGet(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide(page("k", "v"))

	got, ok := r.Get("k")
	require.True(t, ok)
	assert.Equal(t, "k", got.Name)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestMustGet(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide(page("k", "v"))
	assert.Equal(t, "k", r.MustGet("k").Name)

	require.PanicsWithError(t, `catalogue: missing page "missing"`, func() {
		_ = r.MustGet("missing")
	})
}

//
// -----------------------------------------------------------------------------
// Run
// -----------------------------------------------------------------------------

func TestRun_Missing(t *testing.T) {
	t.Parallel()

	err := NewRegistry().Run("missing", io.Discard)

	var missing MissingPageError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "missing", missing.Name)
}

func TestRun_NilRunIsNoOp(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide(Page{Name: "empty"})
	assert.NoError(t, r.Run("empty", io.Discard))
}

func TestRun_PropagatesPageError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := NewRegistry().Provide(Page{Name: "p", Run: func(io.Writer) error { return boom }})

	assert.ErrorIs(t, r.Run("p", io.Discard), boom)
}

// TestRun_RecoversFromPanic verifies page panics come back as errors wrapping ErrPagePanic.
func TestRun_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide(Page{Name: "p", Run: func(io.Writer) error { panic("kaboom") }})

	err := r.Run("p", io.Discard)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPagePanic), "expected ErrPagePanic wrapping, got: %v", err)
	assert.Contains(t, err.Error(), "p: kaboom")
}
