package idx

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestNewIsWellFormed(t *testing.T) {
	id := New()

	require.Len(t, id.String(), 26)
	_, err := ulid.ParseStrict(id.String())
	require.NoError(t, err)
}

func TestNewIsMonotonic(t *testing.T) {
	prev := New()
	for i := 0; i < 100; i++ {
		next := New()
		require.Less(t, prev.String(), next.String())
		prev = next
	}
}

func TestTimestampOrdering(t *testing.T) {
	globalOnce.Do(initGlobal)

	a := global.newAt(time.Unix(1, 0).UTC())
	b := global.newAt(time.Unix(2, 0).UTC())

	require.Less(t, a.String(), b.String())
}
