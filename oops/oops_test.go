//go:build testing

package oops

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinels(t *testing.T) {
	sentinel := errors.New("boom")

	wrapped := Wrap(sentinel)
	require.ErrorIs(t, wrapped, sentinel)

	var sterr *Error
	require.ErrorAs(t, wrapped, &sterr)
	require.NotEmpty(t, sterr.StackTrace())

	require.Nil(t, Wrap(nil))
}

func TestNewCarriesStack(t *testing.T) {
	err := Newf("parse failed: %s", "02-03")
	require.Contains(t, err.Error(), "parse failed: 02-03")

	sterr, ok := err.(*Error)
	require.True(t, ok)
	require.NotEmpty(t, sterr.StackTrace())

	RequireNoError(t, nil)
}
