package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type target struct {
	width int
	name  string
}

func TestApplyRunsOptionsInOrder(t *testing.T) {
	tgt := &target{}
	opts := []Option[*target]{
		NoError(func(tg *target) { tg.width = 1 }),
		NoError(func(tg *target) { tg.width = tg.width + 1 }),
		NoError(func(tg *target) { tg.name = "done" }),
	}

	require.NoError(t, Apply(tgt, opts...))
	assert.Equal(t, 2, tgt.width)
	assert.Equal(t, "done", tgt.name)
}

func TestApplyStopsAtFirstError(t *testing.T) {
	tgt := &target{}
	sentinel := errors.New("bad option")

	opts := []Option[*target]{
		NoError(func(tg *target) { tg.width = 1 }),
		New(func(tg *target) error { return sentinel }),
		NoError(func(tg *target) { tg.width = 100 }),
	}

	err := Apply(tgt, opts...)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, tgt.width, "options after the failing one must not run")
}

func TestApplyWithNoOptions(t *testing.T) {
	tgt := &target{width: 5}
	require.NoError(t, Apply(tgt))
	assert.Equal(t, 5, tgt.width)
}

func TestNewPropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	opt := New(func(tg *target) error { return sentinel })

	err := Apply(&target{}, opt)
	assert.ErrorIs(t, err, sentinel)
}
