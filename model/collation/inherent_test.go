package collation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keelchain/collator-go/model/collation"
)

func TestInherentData_Put(t *testing.T) {
	data := collation.NewInherentData()

	err := data.Put(collation.InherentTimestamp, []byte{1, 2, 3})
	require.NoError(t, err)

	value, ok := data.Get(collation.InherentTimestamp)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, value)

	// inserting under a taken identifier must fail and leave the original
	err = data.Put(collation.InherentTimestamp, []byte{4, 5, 6})
	require.ErrorIs(t, err, collation.ErrDuplicateInherent)

	value, _ = data.Get(collation.InherentTimestamp)
	assert.Equal(t, []byte{1, 2, 3}, value)
}

func TestInherentData_Merge(t *testing.T) {
	data := collation.NewInherentData()
	require.NoError(t, data.Put(collation.InherentTimestamp, []byte{1}))

	other := collation.NewInherentData()
	require.NoError(t, other.Put(collation.InherentValidationData, []byte{2}))

	require.NoError(t, data.Merge(other))
	assert.Len(t, data, 2)

	// merging a bag with an overlapping key must fail
	overlapping := collation.NewInherentData()
	require.NoError(t, overlapping.Put(collation.InherentTimestamp, []byte{3}))
	require.ErrorIs(t, data.Merge(overlapping), collation.ErrDuplicateInherent)
}
