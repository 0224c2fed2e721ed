package notification

import (
	"strings"
)

// Key selects a template.
type Key struct {
	Resource ResourceType
	Action   Action
	// Variant narrows a key further, e.g. the donation status.
	Variant string
}

type Template struct {
	Type Type
	Text string
}

// Placeholders are written {name}. An optional placeholder {?reason}
// renders " Reason: <value>" only when the arg is non-empty.
var templates = map[Key]Template{
	{ResourcePet, ActionApproved, ""}: {
		Type: TypePet,
		Text: `Your pet "{petName}" has been approved by admin {adminName} and is now visible to potential adopters.`,
	},
	{ResourcePet, ActionRejected, ""}: {
		Type: TypePet,
		Text: `Your pet "{petName}" listing has been reviewed by admin {adminName}.{?reason} Please check your pet listing for more details.`,
	},
	{ResourceBooking, ActionConfirmed, ""}: {
		Type: TypeBooking,
		Text: `Your {serviceType} booking for "{petName}" has been confirmed by admin {adminName}. Please check your booking details for appointment information.`,
	},
	{ResourceBooking, ActionCancelled, ""}: {
		Type: TypeBooking,
		Text: `Your {serviceType} booking for "{petName}" has been cancelled by admin {adminName}.{?reason} Please contact us if you have any questions.`,
	},
	{ResourceBooking, ActionCompleted, ""}: {
		Type: TypeBooking,
		Text: `Your {serviceType} booking for "{petName}" has been marked as completed by admin {adminName}. Thank you for using our services!`,
	},
	{ResourceBooking, ActionPending, ""}: {
		Type: TypeBooking,
		Text: `Your {serviceType} booking for "{petName}" has been moved back to pending by admin {adminName}. We will let you know once it is confirmed.`,
	},
	{ResourceUser, ActionRoleChanged, ""}: {
		Type: TypeAdmin,
		Text: `Your account role has been updated to "{role}" by admin {adminName}. This may affect your access permissions.`,
	},
	{ResourceDonation, ActionStatusUpdated, "successful"}: {
		Type: TypeDonation,
		Text: `Your donation of ${amount} has been successfully processed by admin {adminName}. Thank you for your generosity!`,
	},
	{ResourceDonation, ActionStatusUpdated, "failed"}: {
		Type: TypeDonation,
		Text: `Your donation of ${amount} could not be processed. Admin {adminName} has updated the status. Please contact us for assistance.`,
	},
	{ResourceDonation, ActionStatusUpdated, ""}: {
		Type: TypeDonation,
		Text: `Your donation of ${amount} status has been updated to "{status}" by admin {adminName}.`,
	},
	{ResourceSystem, ActionSystemUpdate, ""}: {
		Type: TypeSystem,
		Text: `System Update from admin {adminName}: {message}`,
	},
}

// Lookup falls back from the variant key to the plain key.
func Lookup(k Key) (Template, bool) {
	if t, ok := templates[k]; ok {
		return t, true
	}
	if k.Variant != "" {
		t, ok := templates[Key{Resource: k.Resource, Action: k.Action}]
		return t, ok
	}
	return Template{}, false
}

// Render fills the placeholders of text in one left-to-right pass. Only
// the template is scanned; arg values are copied verbatim, so braces in
// user input are never interpreted. An unknown {name} is kept as written,
// an unsupplied {?name} renders nothing.
func Render(text string, args map[string]string) string {
	var b strings.Builder
	b.Grow(len(text))

	for {
		i := strings.IndexByte(text, '{')
		if i < 0 {
			b.WriteString(text)
			return b.String()
		}
		j := strings.IndexByte(text[i:], '}')
		if j < 0 {
			b.WriteString(text)
			return b.String()
		}

		b.WriteString(text[:i])
		name := text[i+1 : i+j]
		switch {
		case strings.HasPrefix(name, "?"):
			key := name[1:]
			if v := args[key]; v != "" && key != "" {
				b.WriteString(" " + strings.ToUpper(key[:1]) + key[1:] + ": " + v)
			}
		default:
			if v, ok := args[name]; ok {
				b.WriteString(v)
			} else {
				b.WriteString(text[i : i+j+1])
			}
		}
		text = text[i+j+1:]
	}
}
