package config

const (
	// MaxWorkspaceNameLength is the maximum length for workspace names.
	// Limited to 100 to fit in PostgreSQL VARCHAR(100).
	MaxWorkspaceNameLength = 100

	// MaxWorkspaceDescriptionLength is the maximum length for workspace
	// descriptions.
	MaxWorkspaceDescriptionLength = 500

	// MaxProjectNameLength is the maximum length for project names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (names should be short and descriptive).
	MaxProjectNameLength = 255

	// MaxProjectDescriptionLength is the maximum length for project
	// descriptions.
	MaxProjectDescriptionLength = 2000

	// MaxProjectStatusLength is the maximum length for project status
	// values. Status is free text with a default, not an enforced enum.
	MaxProjectStatusLength = 50

	// MaxVideoTitleLength is the maximum length for a project's working
	// video title.
	MaxVideoTitleLength = 500

	// MaxTemplateTypeLength is the maximum length for template type
	// categories (e.g. "title", "description").
	MaxTemplateTypeLength = 50

	// MaxTemplateNameLength is the maximum length for template labels.
	MaxTemplateNameLength = 100

	// MaxTemplateContentLength is the maximum length for template content.
	// Content is a single title or description line with placeholders.
	MaxTemplateContentLength = 256
)

// DefaultWorkspaceID is the reserved id of the default workspace. It is
// created at bootstrap and can never be deleted or renamed.
const DefaultWorkspaceID = 1

// DefaultProjectStatus is assigned when a project is created without an
// explicit status.
const DefaultProjectStatus = "planned"
