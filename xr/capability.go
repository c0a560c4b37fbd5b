package xr

import "strings"

// Capabilities describes what the runtime platform offers.
type Capabilities struct {
	// QuickLook is a platform-native model preview reached through an
	// external link (no in-app surface detection).
	QuickLook bool
	// ImmersiveHitTest is an immersive session with hit-testing support.
	ImmersiveHitTest bool
}

// Path is the presentation path chosen at startup.
type Path uint8

const (
	PathSurfaceLook Path = iota
	PathImmersivePlacement
)

func (p Path) String() string {
	if p == PathImmersivePlacement {
		return "immersive-placement"
	}
	return "surface-look"
}

// Affordance is the external trigger shown to the user.
type Affordance uint8

const (
	AffordanceNone Affordance = iota
	AffordanceQuickLook
	AffordanceEnterAR
)

func (a Affordance) String() string {
	switch a {
	case AffordanceQuickLook:
		return "quick-look"
	case AffordanceEnterAR:
		return "enter-ar"
	default:
		return "none"
	}
}

// Negotiation is the final, session-long routing decision.
type Negotiation struct {
	Path             Path
	Affordance       Affordance
	PlacementEnabled bool
}

// QuickLookOnly reports whether the platform defers AR to an external
// viewer. The in-app preview does not idle-spin there.
func (n Negotiation) QuickLookOnly() bool { return n.Affordance == AffordanceQuickLook }

// Negotiate classifies the platform into exactly one path.
//
// A platform with a native preview always takes the surface-look path even
// if it also reports immersive support. Neither capability falls back to
// surface-look with placement disabled and no affordance.
func Negotiate(c Capabilities) Negotiation {
	switch {
	case c.QuickLook:
		return Negotiation{Path: PathSurfaceLook, Affordance: AffordanceQuickLook}
	case c.ImmersiveHitTest:
		return Negotiation{Path: PathImmersivePlacement, Affordance: AffordanceEnterAR, PlacementEnabled: true}
	default:
		return Negotiation{Path: PathSurfaceLook, Affordance: AffordanceNone}
	}
}

// ParsePlatform maps a platform profile name to its capabilities.
// Unknown names report no capabilities.
func ParsePlatform(name string) Capabilities {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ios", "ipados":
		return Capabilities{QuickLook: true}
	case "android", "webxr":
		return Capabilities{ImmersiveHitTest: true}
	default:
		return Capabilities{}
	}
}
