package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldInput = "input"

	// Document fields.
	FieldParagraph  = "paragraph"
	FieldParagraphs = "paragraphs"
	FieldOffset     = "offset"
	FieldType       = "type"
	FieldStamped    = "stamped"
	FieldLang       = "lang"
	FieldBlocks     = "blocks"

	// Edit fields.
	FieldEditStart  = "edit_start"
	FieldEditLength = "edit_len"
	FieldDelta      = "delta"
	FieldFullRetag  = "full_retag"
	FieldCursor     = "cursor"

	// Viewer fields.
	FieldViewer      = "viewer"
	FieldActive      = "active"
	FieldInvalidated = "invalidated"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
