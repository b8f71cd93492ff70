package push

import "fmt"

// Message is a rich-inbox message. Title and Body are required.
type Message struct {
	Title           string
	Body            string
	ContentType     *string
	ContentEncoding *string
	Extra           FieldMap
	Expiry          any
	Icons           FieldMap
	Options         FieldMap
}

func (msg Message) Build() (FieldMap, error) {
	if msg.Title == "" {
		return nil, fmt.Errorf("%w: message title", ErrMissingParameter)
	}
	if msg.Body == "" {
		return nil, fmt.Errorf("%w: message body", ErrMissingParameter)
	}
	m := FieldMap{"title": msg.Title, "body": msg.Body}
	setIfPresent(m, "content_type", msg.ContentType)
	setIfPresent(m, "content_encoding", msg.ContentEncoding)
	setIfMap(m, "extra", msg.Extra)
	setIfAny(m, "expiry", msg.Expiry)
	setIfMap(m, "icons", msg.Icons)
	setIfMap(m, "options", msg.Options)
	return m, nil
}

// InApp is an in-app message block.
type InApp struct {
	Alert       *string
	DisplayType *string
	Expiry      any
	Display     FieldMap
	Actions     FieldMap
	Interactive FieldMap
	Extra       FieldMap
}

func (i InApp) Build() FieldMap {
	m := FieldMap{}
	setIfPresent(m, "alert", i.Alert)
	setIfPresent(m, "display_type", i.DisplayType)
	setIfAny(m, "expiry", i.Expiry)
	setIfMap(m, "display", i.Display)
	setIfMap(m, "actions", i.Actions)
	setIfMap(m, "interactive", i.Interactive)
	setIfMap(m, "extra", i.Extra)
	return m
}

// Options carries delivery options. Expiry is required and accepts seconds
// from now (int) or an absolute timestamp string.
type Options struct {
	Expiry any
}

func (o Options) Build() (FieldMap, error) {
	if o.Expiry == nil {
		return nil, fmt.Errorf("%w: options expiry", ErrMissingParameter)
	}
	return FieldMap{"expiry": o.Expiry}, nil
}

// Campaigns tags a push with marketing categories, at least one.
func Campaigns(categories ...string) (FieldMap, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: campaign categories", ErrMissingParameter)
	}
	return FieldMap{"categories": categories}, nil
}

// DeviceTypeAll targets every registered platform.
const DeviceTypeAll = "all"

// DeviceTypes passes the platform selection through unchanged: a lone
// DeviceTypeAll collapses to the "all" sentinel, anything else stays an
// explicit list.
func DeviceTypes(types ...string) any {
	if len(types) == 1 && types[0] == DeviceTypeAll {
		return DeviceTypeAll
	}
	return types
}
