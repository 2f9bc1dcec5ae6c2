package naming

import "strings"

// Names of the hand-authored declarations, without prefix.
const (
	PayloadName     = "Payload"
	UserName        = "User"
	MediaFormatName = "MediaFormat"
	MediaName       = "Media"
)

// plugin targets that resolve to hand-authored declarations
var wellKnownTargets = map[string]string{
	"plugin::users-permissions.user": UserName,
	"plugin::upload.file":            MediaName,
}

// RelationTargetName resolves a relation target UID to its projected type name.
//   - "api::category.category" -> "TCategory"
//   - "plugin::users-permissions.user" -> "TUser"
//   - "plugin::upload.file" -> "TMedia"
//   - "admin::user" -> "TAdminUser"
//
// It returns false when the target is not a UID it understands.
func RelationTargetName(prefix, target string) (string, bool) {
	if name, ok := wellKnownTargets[target]; ok {
		return prefix + name, true
	}

	namespace, rest, found := strings.Cut(target, "::")
	if !found {
		// bare names such as "category" are accepted too
		rest = target
	}

	name := rest
	if i := strings.LastIndexByte(rest, '.'); i >= 0 {
		name = rest[i+1:]
	} else if found && rest != "" {
		// namespace-level targets keep their namespace so they never alias a well-known type
		name = namespace + "-" + rest
	}

	if name == "" {
		return "", false
	}

	return TypeName(prefix, name), true
}

// IsWellKnownTarget reports whether a relation target maps to a hand-authored declaration.
func IsWellKnownTarget(target string) bool {
	_, ok := wellKnownTargets[target]
	return ok
}

// ComponentTypeName resolves a component UID ("shared.seo") to its projected type name ("TSeo").
func ComponentTypeName(prefix, uid string) (string, bool) {
	name := uid
	if i := strings.LastIndexByte(uid, '.'); i >= 0 {
		name = uid[i+1:]
	}

	if name == "" {
		return "", false
	}

	return TypeName(prefix, name), true
}
