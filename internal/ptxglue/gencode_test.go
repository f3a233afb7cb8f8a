package ptxglue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCapability(t *testing.T) {
	tests := []struct {
		in      string
		want    Capability
		wantErr bool
	}{
		{"sm_35", CC35, false},
		{"SM_80", CC80, false},
		{"compute_70", CC70, false},
		{"35", CC35, false},
		{"3.5", CC35, false},
		{"7.5", CC75, false},
		{" 6.1 ", CC61, false},
		{"sm_", "", true},
		{"kepler", "", true},
		{"3.5.1", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCapability(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "ptx", PhasePTX.String())
	assert.Equal(t, "unknown", Phase(9).String())
	assert.Equal(t, "ptx", GencodePTX.String())
	assert.Equal(t, "unknown", GencodeKind(9).String())
	assert.Equal(t, "sm_35", CC35.String())
	assert.Equal(t, Gencode{Kind: GencodePTX, Capability: CC52}, PTXGencode(CC52))
}
