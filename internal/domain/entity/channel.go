package entity

import "strings"

// Channel is the release track of the running build.
type Channel int

const (
	ChannelStable Channel = iota
	ChannelBeta
	ChannelDev
	ChannelCanary
)

// ParseChannel maps a channel name to a Channel. Unknown and empty names
// resolve to ChannelStable.
func ParseChannel(s string) Channel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beta":
		return ChannelBeta
	case "dev", "unstable":
		return ChannelDev
	case "canary", "nightly":
		return ChannelCanary
	default:
		return ChannelStable
	}
}

// IsUnstable reports whether the channel uses the unstable escalation table.
func (c Channel) IsUnstable() bool {
	return c == ChannelDev || c == ChannelCanary
}

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case ChannelBeta:
		return "beta"
	case ChannelDev:
		return "dev"
	case ChannelCanary:
		return "canary"
	default:
		return "stable"
	}
}
