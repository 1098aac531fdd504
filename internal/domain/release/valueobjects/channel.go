package valueobjects

import "fmt"

type Channel string

const (
	ChannelNightly Channel = "Nightly"
	ChannelAurora  Channel = "Aurora"
	ChannelBeta    Channel = "Beta"
	ChannelRelease Channel = "Release"
	ChannelESR     Channel = "ESR"
)

var validChannels = map[Channel]bool{
	ChannelNightly: true,
	ChannelAurora:  true,
	ChannelBeta:    true,
	ChannelRelease: true,
	ChannelESR:     true,
}

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	return validChannels[c]
}

func NewChannel(s string) (Channel, error) {
	c := Channel(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid channel: %s", s)
	}
	return c, nil
}

// Channels returns all valid channels in display order.
func Channels() []Channel {
	return []Channel{
		ChannelNightly,
		ChannelAurora,
		ChannelBeta,
		ChannelRelease,
		ChannelESR,
	}
}
