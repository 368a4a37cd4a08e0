package kin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Inverse(t *testing.T) {
	testCases := []struct {
		kind    Kind
		inverse Kind
	}{
		{KindParent, KindChild},
		{KindChild, KindParent},
		{KindSpouse, KindSpouse},
		{KindSibling, KindSibling},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			assert.Equal(t, tc.inverse, tc.kind.Inverse())
			// Inversion is an involution.
			assert.Equal(t, tc.kind, tc.kind.Inverse().Inverse())
		})
	}
}

func TestKind_InversePanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() {
		Kind("cousin").Inverse()
	})
}

func TestKind_Symmetric(t *testing.T) {
	assert.False(t, KindParent.Symmetric())
	assert.False(t, KindChild.Symmetric())
	assert.True(t, KindSpouse.Symmetric())
	assert.True(t, KindSibling.Symmetric())
}

func TestParseKind(t *testing.T) {
	for _, valid := range []string{"parent", "child", "spouse", "sibling"} {
		k, err := ParseKind(valid)
		require.NoError(t, err)
		assert.Equal(t, Kind(valid), k)
	}

	for _, invalid := range []string{"", "Parent", "cousin", "PARENT", "step-parent"} {
		_, err := ParseKind(invalid)
		assert.Error(t, err, "kind %q should be rejected", invalid)
	}
}
