package gesture

// Zone classifies which region of the panel a point falls into.
type Zone int32

const (
	ZoneMain Zone = iota
	ZoneScrollV
	ZoneScrollH
	ZoneScrollCorner
)

func (z Zone) String() string {
	switch z {
	case ZoneMain:
		return "main"
	case ZoneScrollV:
		return "scroll-v"
	case ZoneScrollH:
		return "scroll-h"
	case ZoneScrollCorner:
		return "scroll-corner"
	default:
		return "unknown"
	}
}

// Classify maps a point to its zone. Boundary coordinates belong to the
// scroll zone (>=, not >). A zero-width strip is inactive.
func Classify(x, y, hres, vres, scrollW, scrollH int32) Zone {
	inRight := scrollW > 0 && x >= hres-scrollW
	inBottom := scrollH > 0 && y >= vres-scrollH

	switch {
	case inRight && inBottom:
		return ZoneScrollCorner
	case inRight:
		return ZoneScrollV
	case inBottom:
		return ZoneScrollH
	default:
		return ZoneMain
	}
}

func (c Config) classify(x, y int32) Zone {
	return Classify(x, y, c.HRes, c.VRes, c.ScrollZoneW, c.ScrollZoneH)
}
