package push

import "fmt"

// Notification assembles the cross-platform notification block: a common
// alert plus per-platform override blocks built with the platform structs
// below.
type Notification struct {
	Alert       *string
	IOS         FieldMap
	Android     FieldMap
	Amazon      FieldMap
	Web         FieldMap
	WNS         FieldMap
	SMS         FieldMap
	Actions     FieldMap
	Interactive FieldMap

	// OpenPlatforms maps an open-platform name to its override block,
	// emitted under "open::<name>".
	OpenPlatforms map[string]FieldMap
}

// Build compacts the block. At least one field must be set.
func (n Notification) Build() (FieldMap, error) {
	m := FieldMap{}
	setIfPresent(m, "alert", n.Alert)
	setIfMap(m, "ios", n.IOS)
	setIfMap(m, "android", n.Android)
	setIfMap(m, "amazon", n.Amazon)
	setIfMap(m, "web", n.Web)
	setIfMap(m, "wns", n.WNS)
	setIfMap(m, "sms", n.SMS)
	setIfMap(m, "actions", n.Actions)
	setIfMap(m, "interactive", n.Interactive)
	for platform, override := range n.OpenPlatforms {
		if len(override) > 0 {
			m["open::"+platform] = override
		}
	}
	if len(m) == 0 {
		return nil, ErrEmptyNotification
	}
	return m, nil
}

// IOS is the APNs override block. Alert accepts a string or a FieldMap,
// Badge an int or an autobadge directive such as "+1".
type IOS struct {
	Alert            any
	Badge            any
	Sound            *string
	ContentAvailable *bool
	Extra            FieldMap
	Expiry           any // seconds from now (int) or an absolute timestamp string
	Priority         *int
	Category         *string
	MutableContent   *bool
	Title            *string
	Subtitle         *string
	CollapseID       *string
	ThreadID         *string
}

func (p IOS) Build() FieldMap {
	m := FieldMap{}
	setIfAny(m, "alert", p.Alert)
	setIfAny(m, "badge", p.Badge)
	setIfPresent(m, "sound", p.Sound)
	// APNs spells this one with a hyphen.
	setIfPresent(m, "content-available", p.ContentAvailable)
	setIfMap(m, "extra", p.Extra)
	setIfAny(m, "expiry", p.Expiry)
	setIfPresent(m, "priority", p.Priority)
	setIfPresent(m, "category", p.Category)
	setIfPresent(m, "mutable_content", p.MutableContent)
	setIfPresent(m, "title", p.Title)
	setIfPresent(m, "subtitle", p.Subtitle)
	setIfPresent(m, "collapse_id", p.CollapseID)
	setIfPresent(m, "thread_id", p.ThreadID)
	return m
}

// Android is the FCM override block.
type Android struct {
	Alert              *string
	Title              *string
	Summary            *string
	Extra              FieldMap
	Icon               *string
	IconColor          *string
	Sound              *string
	Priority           *int
	CollapseKey        *string
	TimeToLive         any
	DelayWhileIdle     *bool
	DeliveryPriority   *string
	LocalOnly          *bool
	Style              FieldMap
	Wearable           FieldMap
	PublicNotification FieldMap
	Visibility         *int
}

func (p Android) Build() FieldMap {
	m := FieldMap{}
	setIfPresent(m, "alert", p.Alert)
	setIfPresent(m, "title", p.Title)
	setIfPresent(m, "summary", p.Summary)
	setIfMap(m, "extra", p.Extra)
	setIfPresent(m, "icon", p.Icon)
	setIfPresent(m, "icon_color", p.IconColor)
	setIfPresent(m, "sound", p.Sound)
	setIfPresent(m, "priority", p.Priority)
	setIfPresent(m, "collapse_key", p.CollapseKey)
	setIfAny(m, "time_to_live", p.TimeToLive)
	setIfPresent(m, "delay_while_idle", p.DelayWhileIdle)
	setIfPresent(m, "delivery_priority", p.DeliveryPriority)
	setIfPresent(m, "local_only", p.LocalOnly)
	setIfMap(m, "style", p.Style)
	setIfMap(m, "wearable", p.Wearable)
	setIfMap(m, "public_notification", p.PublicNotification)
	setIfPresent(m, "visibility", p.Visibility)
	return m
}

// Amazon is the ADM override block.
type Amazon struct {
	Alert            *string
	ConsolidationKey *string
	ExpiresAfter     any
	Extra            FieldMap
	Title            *string
	Summary          *string
	Style            FieldMap
	Sound            *string
}

func (p Amazon) Build() FieldMap {
	m := FieldMap{}
	setIfPresent(m, "alert", p.Alert)
	setIfPresent(m, "consolidation_key", p.ConsolidationKey)
	setIfAny(m, "expires_after", p.ExpiresAfter)
	setIfMap(m, "extra", p.Extra)
	setIfPresent(m, "title", p.Title)
	setIfPresent(m, "summary", p.Summary)
	setIfMap(m, "style", p.Style)
	setIfPresent(m, "sound", p.Sound)
	return m
}

// Web is the browser push override block.
type Web struct {
	Alert              *string
	Title              *string
	Extra              FieldMap
	Icon               FieldMap
	RequireInteraction *bool
}

func (p Web) Build() FieldMap {
	m := FieldMap{}
	setIfPresent(m, "alert", p.Alert)
	setIfPresent(m, "title", p.Title)
	setIfMap(m, "extra", p.Extra)
	setIfMap(m, "icon", p.Icon)
	setIfPresent(m, "require_interaction", p.RequireInteraction)
	return m
}

// WNS is the Windows override block. The service accepts exactly one
// message type per push, so Build enforces that cross-field constraint.
type WNS struct {
	Alert any
	Toast FieldMap
	Tile  FieldMap
	Badge FieldMap
}

func (p WNS) Build() (FieldMap, error) {
	m := FieldMap{}
	setIfAny(m, "alert", p.Alert)
	setIfMap(m, "toast", p.Toast)
	setIfMap(m, "tile", p.Tile)
	setIfMap(m, "badge", p.Badge)
	if len(m) != 1 {
		return nil, ErrWNSMessageType
	}
	return m, nil
}

// OpenPlatform is the override block for an open platform, keyed into the
// notification as "open::<platform>" via Notification.OpenPlatforms.
type OpenPlatform struct {
	Alert           *string
	Title           *string
	Summary         *string
	Extra           FieldMap
	MediaAttachment *string
	Interactive     FieldMap
}

func (p OpenPlatform) Build() FieldMap {
	m := FieldMap{}
	setIfPresent(m, "alert", p.Alert)
	setIfPresent(m, "title", p.Title)
	setIfPresent(m, "summary", p.Summary)
	setIfMap(m, "extra", p.Extra)
	setIfPresent(m, "media_attachment", p.MediaAttachment)
	setIfMap(m, "interactive", p.Interactive)
	return m
}

// Actions attaches tag/open/share behavior to a notification. AddTag and
// RemoveTag accept a single tag string or a list of tags.
type Actions struct {
	AddTag     any
	RemoveTag  any
	Open       FieldMap
	Share      *string
	AppDefined FieldMap
}

func (a Actions) Build() FieldMap {
	m := FieldMap{}
	setIfAny(m, "add_tag", a.AddTag)
	setIfAny(m, "remove_tag", a.RemoveTag)
	setIfMap(m, "open", a.Open)
	setIfPresent(m, "share", a.Share)
	setIfMap(m, "app_defined", a.AppDefined)
	return m
}

// Interactive selects a button category and per-button actions. Type is
// required; the empty check stays even though the field is non-optional,
// since the zero value is still constructible.
type Interactive struct {
	Type          string
	ButtonActions FieldMap
}

func (i Interactive) Build() (FieldMap, error) {
	if i.Type == "" {
		return nil, fmt.Errorf("%w: interactive type", ErrMissingParameter)
	}
	m := FieldMap{"type": i.Type}
	setIfMap(m, "button_actions", i.ButtonActions)
	return m, nil
}
