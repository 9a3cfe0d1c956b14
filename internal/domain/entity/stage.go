package entity

// Stage is the ordered severity level of the restart recommendation.
type Stage int

const (
	StageNone Stage = iota
	StageLow
	StageElevated
	StageHigh
	StageSevere
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageLow:
		return "low"
	case StageElevated:
		return "elevated"
	case StageHigh:
		return "high"
	case StageSevere:
		return "severe"
	default:
		return "none"
	}
}

// TerminalStage returns the highest stage reachable for a channel class.
func TerminalStage(unstable bool) Stage {
	if unstable {
		return StageLow
	}
	return StageSevere
}

// IsTerminalFor reports whether no further escalation is possible once s is
// reached on a channel of the given class.
func (s Stage) IsTerminalFor(unstable bool) bool {
	return s >= TerminalStage(unstable)
}

// IconType selects which surface an icon is rendered on.
type IconType int

const (
	// IconTypeMenu is the icon shown next to the restart entry in the app menu.
	IconTypeMenu IconType = iota
	// IconTypeBadge is the small overlay badge on the menu button.
	IconTypeBadge
)

// IconID identifies a severity icon resource. The empty IconID means no icon.
type IconID string

const (
	IconNone         IconID = ""
	IconUpdateMenu1  IconID = "update-menu-1"
	IconUpdateMenu2  IconID = "update-menu-2"
	IconUpdateMenu3  IconID = "update-menu-3"
	IconUpdateMenu4  IconID = "update-menu-4"
	IconUpdateBadge1 IconID = "update-badge-1"
	IconUpdateBadge2 IconID = "update-badge-2"
	IconUpdateBadge3 IconID = "update-badge-3"
	IconUpdateBadge4 IconID = "update-badge-4"
)

// IconFor maps a stage to its icon for the given surface.
func IconFor(s Stage, t IconType) IconID {
	badge := t == IconTypeBadge
	switch s {
	case StageSevere:
		return pick(badge, IconUpdateBadge4, IconUpdateMenu4)
	case StageHigh:
		return pick(badge, IconUpdateBadge3, IconUpdateMenu3)
	case StageElevated:
		return pick(badge, IconUpdateBadge2, IconUpdateMenu2)
	case StageLow:
		return pick(badge, IconUpdateBadge1, IconUpdateMenu1)
	default:
		return IconNone
	}
}

func pick(badge bool, b, m IconID) IconID {
	if badge {
		return b
	}
	return m
}
