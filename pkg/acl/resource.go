package acl

import "strings"

const (
	pluginSeparator = "."
	prefixSeparator = "/"
)

// ResourceDescriptor identifies a controller, optionally scoped by a plugin
// namespace and a routing prefix. Controller is always set; Plugin and Prefix
// are empty unless the source key encodes them.
type ResourceDescriptor struct {
	Plugin     string `json:"plugin,omitempty"`
	Prefix     string `json:"prefix,omitempty"`
	Controller string `json:"controller"`
}

// EncodeResource flattens a descriptor into its flat key form
// "[plugin.][prefix/]controller". The prefix separator is applied first, the
// plugin separator outermost, mirroring the decode order.
func EncodeResource(d ResourceDescriptor) string {
	key := d.Controller
	if d.Prefix != "" {
		key = d.Prefix + prefixSeparator + key
	}
	if d.Plugin != "" {
		key = d.Plugin + pluginSeparator + key
	}
	return key
}

// DecodeResource parses a flat resource key back into a descriptor. The
// plugin separator is checked before the prefix separator; that order is part
// of the key grammar and must not change. No character-set validation is
// performed; any substring is accepted as the respective component.
func DecodeResource(key string) ResourceDescriptor {
	var d ResourceDescriptor

	rest := key
	if plugin, remainder, found := strings.Cut(rest, pluginSeparator); found {
		d.Plugin = plugin
		rest = remainder
	}
	if prefix, controller, found := strings.Cut(rest, prefixSeparator); found {
		d.Prefix = prefix
		rest = controller
	}
	d.Controller = rest

	return d
}
