package service

import (
	"context"
	"testing"

	"exposurelog-be/pkg/butler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfiguration(t *testing.T) {
	svc := NewConfigurationService("summit", []butler.Registry{
		&fakeRegistry{uri: "https://butler1.example.org"},
		&fakeRegistry{uri: "https://butler2.example.org"},
	})

	res := svc.GetConfiguration()
	assert.Equal(t, "summit", res.SiteId)
	assert.Equal(t, "https://butler1.example.org", res.ButlerUri1)
	assert.Equal(t, "https://butler2.example.org", res.ButlerUri2)
}

func TestGetConfigurationSingleRegistry(t *testing.T) {
	svc := NewConfigurationService("base", []butler.Registry{
		&fakeRegistry{uri: "https://butler1.example.org"},
	})

	res := svc.GetConfiguration()
	assert.Equal(t, "https://butler1.example.org", res.ButlerUri1)
	assert.Empty(t, res.ButlerUri2)
}

func TestGetInstruments(t *testing.T) {
	svc := NewConfigurationService("summit", []butler.Registry{
		&fakeRegistry{instruments: []string{"LSSTCam", "LATISS"}},
		&fakeRegistry{instruments: []string{"LSSTComCam"}},
	})

	res, err := svc.GetInstruments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"LSSTCam", "LATISS"}, res.ButlerInstruments1)
	assert.Equal(t, []string{"LSSTComCam"}, res.ButlerInstruments2)
}
