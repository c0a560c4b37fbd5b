package xr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name string
		caps Capabilities
		want Negotiation
	}{
		{"none", Capabilities{}, Negotiation{Path: PathSurfaceLook, Affordance: AffordanceNone}},
		{"quicklook", Capabilities{QuickLook: true}, Negotiation{Path: PathSurfaceLook, Affordance: AffordanceQuickLook}},
		{"immersive", Capabilities{ImmersiveHitTest: true}, Negotiation{Path: PathImmersivePlacement, Affordance: AffordanceEnterAR, PlacementEnabled: true}},
		{"both prefers quicklook", Capabilities{QuickLook: true, ImmersiveHitTest: true}, Negotiation{Path: PathSurfaceLook, Affordance: AffordanceQuickLook}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.caps))
		})
	}
}

func TestParsePlatform(t *testing.T) {
	assert.Equal(t, Capabilities{QuickLook: true}, ParsePlatform("iOS"))
	assert.Equal(t, Capabilities{ImmersiveHitTest: true}, ParsePlatform(" android "))
	assert.Equal(t, Capabilities{}, ParsePlatform("desktop"))
	assert.Equal(t, Capabilities{}, ParsePlatform(""))
}

func TestQuickLookOnly(t *testing.T) {
	assert.True(t, Negotiate(Capabilities{QuickLook: true}).QuickLookOnly())
	assert.False(t, Negotiate(Capabilities{}).QuickLookOnly())
	assert.False(t, Negotiate(Capabilities{ImmersiveHitTest: true}).QuickLookOnly())
}
