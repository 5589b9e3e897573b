package canon

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func symmetricPairDataset() *Dataset {
	return NewDataset([]Quad{
		NewQuad(NewBlankNode("_:a"), NewIRI("p"), NewBlankNode("_:b"), nil),
		NewQuad(NewBlankNode("_:b"), NewIRI("p"), NewBlankNode("_:a"), nil),
	})
}

func TestDistinguishBreaksSymmetricPair(t *testing.T) {
	ds := symmetricPairDataset()
	cfg, err := DefaultConfig()
	require.NoError(t, err)
	cache := newTermHashCache(cfg.hasher())

	h, err := hashBNodes(ds, nil, cache, cfg, NewDiscardLogger())
	require.NoError(t, err)
	require.False(t, h.IsTrivial())

	st := &distinguishState{cache: cache, cfg: cfg, log: NewDiscardLogger()}
	result, err := distinguish(context.Background(), ds, h, nil, st)
	require.NoError(t, err)
	require.NotNil(t, result)

	lines := result.SortedNQuads()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "_:c14n_0")
}

func TestDistinguishOnTrivialInputIsInvariantViolation(t *testing.T) {
	ds := NewDataset([]Quad{NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), nil)})
	cfg, err := DefaultConfig()
	require.NoError(t, err)
	cache := newTermHashCache(cfg.hasher())

	h, err := hashBNodes(ds, nil, cache, cfg, NewDiscardLogger())
	require.NoError(t, err)
	require.True(t, h.IsTrivial())

	st := &distinguishState{cache: cache, cfg: cfg, log: NewDiscardLogger()}
	_, err = distinguish(context.Background(), ds, h, nil, st)
	require.Error(t, err)
	var canonErr *Error
	require.ErrorAs(t, err, &canonErr)
	assert.Equal(t, InternalInvariantViolated, canonErr.Kind)
}

func TestDistinguishRespectsCancelledContext(t *testing.T) {
	ds := symmetricPairDataset()
	cfg, err := DefaultConfig()
	require.NoError(t, err)
	cache := newTermHashCache(cfg.hasher())

	h, err := hashBNodes(ds, nil, cache, cfg, NewDiscardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := &distinguishState{cache: cache, cfg: cfg, log: NewDiscardLogger()}
	_, err = distinguish(ctx, ds, h, nil, st)
	require.Error(t, err)
	var canonErr *Error
	require.ErrorAs(t, err, &canonErr)
	assert.Equal(t, ComputationBudgetExceeded, canonErr.Kind)
}

func TestDistinguishRespectsStepBudget(t *testing.T) {
	ds := symmetricPairDataset()
	cfg, err := DefaultConfig()
	require.NoError(t, err)
	cfg.DistinguishStepBudget = 1
	cache := newTermHashCache(cfg.hasher())

	h, err := hashBNodes(ds, nil, cache, cfg, NewDiscardLogger())
	require.NoError(t, err)

	st := &distinguishState{cache: cache, cfg: cfg, log: NewDiscardLogger(), steps: 1}
	_, err = distinguish(context.Background(), ds, h, nil, st)
	require.Error(t, err)
	var canonErr *Error
	require.ErrorAs(t, err, &canonErr)
	assert.Equal(t, ComputationBudgetExceeded, canonErr.Kind)
}
