//go:build testing

package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNowOverride(t *testing.T) {
	pinned := time.Date(2001, time.September, 15, 10, 30, 0, 0, time.UTC)
	MustSetNowOverride(pinned)
	defer ResetNowOverride()

	require.Equal(t, pinned, Now())

	date, err := ParseDate("today")
	require.NoError(t, err)
	require.Equal(t, time.Date(2001, time.September, 15, 0, 0, 0, 0, time.UTC), date)

	date, err = ParseDate("02-03")
	require.NoError(t, err)
	require.Equal(t, 2001, date.Year())

	ResetNowOverride()
	require.NotEqual(t, pinned, Now())
}
