// Package entity contains the core business objects of the project.
package entity

// Channel identifies a notification delivery channel for a location automation.
type Channel string

const (
	// ChannelSMS delivers via text message to the visitor's phone number.
	ChannelSMS Channel = "sms"
	// ChannelEmail delivers via email to the visitor's email address.
	ChannelEmail Channel = "email"
	// ChannelPush delivers via push notification to the visitor's registered device.
	ChannelPush Channel = "push"
)

// AllChannels lists every channel the decision engine evaluates.
// Channels are evaluated independently: a suppression on one channel
// never affects another.
func AllChannels() []Channel {
	return []Channel{ChannelSMS, ChannelEmail, ChannelPush}
}

// Valid reports whether the channel is one of the known channels.
func (c Channel) Valid() bool {
	switch c {
	case ChannelSMS, ChannelEmail, ChannelPush:
		return true
	}

	return false
}

// RequiresSubject reports whether templates for this channel carry a subject line.
func (c Channel) RequiresSubject() bool {
	return c == ChannelEmail
}
