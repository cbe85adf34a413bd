package str

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeSpace(t *testing.T) {
	require.Equal(t, "reserva para 3", NormalizeSpace("  reserva   para\t3 \n"))
	require.Equal(t, "", NormalizeSpace("   "))
	require.Equal(t, "hola", NormalizeSpace("hola"))
}
