package push

import (
	"fmt"

	"github.com/google/uuid"
)

// Audience selectors. Channel ids are server-assigned UUIDs, so the channel
// selectors reject anything that does not parse as one before a request is
// ever built.

// All targets the entire audience ("broadcast").
const All = "all"

// IOSChannel selects a single iOS channel.
func IOSChannel(id string) (FieldMap, error) {
	return channelSelector("ios_channel", id)
}

// AndroidChannel selects a single Android channel.
func AndroidChannel(id string) (FieldMap, error) {
	return channelSelector("android_channel", id)
}

// AmazonChannel selects a single Amazon channel.
func AmazonChannel(id string) (FieldMap, error) {
	return channelSelector("amazon_channel", id)
}

// ChannelID selects a channel regardless of platform.
func ChannelID(id string) (FieldMap, error) {
	return channelSelector("channel", id)
}

// OpenChannel selects an open-platform channel.
func OpenChannel(id string) (FieldMap, error) {
	return channelSelector("open_channel", id)
}

func channelSelector(key string, id string) (FieldMap, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s %q", ErrInvalidChannel, key, id)
	}
	return FieldMap{key: id}, nil
}

// NamedUser selects a named user.
func NamedUser(id string) FieldMap { return FieldMap{"named_user": id} }

// Tag selects devices carrying the tag in the default tag group.
func Tag(tag string) FieldMap { return FieldMap{"tag": tag} }

// TagGroup selects devices carrying the tag in a specific tag group.
func TagGroup(tag string, group string) FieldMap {
	return FieldMap{"tag": tag, "group": group}
}

// Alias selects devices registered under an alias.
func Alias(alias string) FieldMap { return FieldMap{"alias": alias} }

// Segment selects a predefined segment.
func Segment(id string) FieldMap { return FieldMap{"segment": id} }

// And intersects selectors.
func And(selectors ...FieldMap) FieldMap { return FieldMap{"and": selectors} }

// Or unions selectors.
func Or(selectors ...FieldMap) FieldMap { return FieldMap{"or": selectors} }

// Not inverts a selector.
func Not(selector FieldMap) FieldMap { return FieldMap{"not": selector} }
