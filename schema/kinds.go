package schema

// Kind names one of the record shapes the metadata layer understands.
type Kind string

const (
	KindUserProfile     Kind = "UserProfile"
	KindSessionMetadata Kind = "SessionMetadata"
	KindTaggedInterval  Kind = "TaggedInterval"
)

// Version names a schema revision. Revisions are a closed set: adding a
// revision means adding a constant and an embedded document, not branching
// on field presence.
type Version string

const (
	V1 Version = "v1"
	V2 Version = "v2"
)

// documentKey is the key under which each kind's schema appears inside a
// metadata document.
func documentKey(kind Kind) (string, bool) {
	switch kind {
	case KindUserProfile:
		return "userSchema", true
	case KindSessionMetadata:
		return "sessionSchema", true
	case KindTaggedInterval:
		return "tagSchema", true
	default:
		return "", false
	}
}

func kindForDocumentKey(key string) (Kind, bool) {
	switch key {
	case "userSchema":
		return KindUserProfile, true
	case "sessionSchema":
		return KindSessionMetadata, true
	case "tagSchema":
		return KindTaggedInterval, true
	default:
		return "", false
	}
}
