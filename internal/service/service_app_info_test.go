package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/rhymebook/internal/config"
	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_EmptyVersion(t *testing.T) {
	for _, version := range []string{"", "   ", "\t\n"} {
		svc, err := NewAppInfoService(config.App{Version: version}, logger.Nop())

		assert.Nil(t, svc)
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	}
}

func TestGetAppVersion_Trimmed(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: " 1.4.0\n"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.4.0", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion(t *testing.T) {
	for _, version := range []string{"1.0.0", "v1.2.3-beta+build.42", "N/A"} {
		svc, err := NewAppInfoService(config.App{Version: version}, logger.Nop())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Equal(t, version, svc.GetAppVersion(ctx))
	}
}
