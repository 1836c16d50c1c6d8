package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// SectionManifestUUID derives the stable identifier for a section manifest.
func SectionManifestUUID(sectionType string) uuid.UUID {
	return UUID("go-builder:section_manifest:" + strings.ToLower(strings.TrimSpace(sectionType)))
}

// TemplateUUID derives the stable identifier for a template pack.
func TemplateUUID(templateID string) uuid.UUID {
	return UUID("go-builder:template:" + strings.ToLower(strings.TrimSpace(templateID)))
}

// ProjectRecordUUID derives the stable row identifier for a persisted
// builder project.
func ProjectRecordUUID(projectID string) uuid.UUID {
	return UUID("go-builder:project:" + strings.TrimSpace(projectID))
}

// ThemeUUID derives the stable identifier for a theme preset.
func ThemeUUID(themeID string) uuid.UUID {
	return UUID("go-builder:theme:" + strings.ToLower(strings.TrimSpace(themeID)))
}
