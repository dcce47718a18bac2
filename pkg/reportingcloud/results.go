package reportingcloud

// AccountSettings describes the quota of the authenticated account. ValidUntil
// is a unix timestamp.
type AccountSettings struct {
	SerialNumber            string `mapstructure:"serial_number"`
	CreatedDocuments        int    `mapstructure:"created_documents"`
	UploadedTemplates       int    `mapstructure:"uploaded_templates"`
	MaxDocuments            int    `mapstructure:"max_documents"`
	MaxTemplates            int    `mapstructure:"max_templates"`
	ValidUntil              int64  `mapstructure:"valid_until"`
	ProofingTransactions    int    `mapstructure:"proofing_transactions"`
	MaxProofingTransactions int    `mapstructure:"max_proofing_transactions"`
}

// TemplateListEntry is one stored template. Modified is a unix timestamp.
type TemplateListEntry struct {
	TemplateName string `mapstructure:"template_name"`
	Modified     int64  `mapstructure:"modified"`
	Size         int64  `mapstructure:"size"`
}

// TemplateInfo describes the merge structure of a stored template.
type TemplateInfo struct {
	TemplateName           string                 `mapstructure:"template_name"`
	MergeBlocks            []MergeBlock           `mapstructure:"merge_blocks"`
	MergeFields            []MergeField           `mapstructure:"merge_fields"`
	UserDocumentProperties []UserDocumentProperty `mapstructure:"user_document_properties"`
}

// MergeBlock is a repeating region of a template.
type MergeBlock struct {
	Name        string       `mapstructure:"name"`
	MergeFields []MergeField `mapstructure:"merge_fields"`
	MergeBlocks []MergeBlock `mapstructure:"merge_blocks"`
}

// MergeField is a placeholder that merge data is written into.
type MergeField struct {
	Name               string `mapstructure:"name"`
	Text               string `mapstructure:"text"`
	TextBefore         string `mapstructure:"text_before"`
	TextAfter          string `mapstructure:"text_after"`
	DateTimeFormat     string `mapstructure:"date_time_format"`
	NumericFormat      string `mapstructure:"numeric_format"`
	PreserveFormatting bool   `mapstructure:"preserve_formatting"`
}

// UserDocumentProperty is a custom document property of a template.
type UserDocumentProperty struct {
	Name  string `mapstructure:"name"`
	Type  string `mapstructure:"type"`
	Value any    `mapstructure:"value"`
}

// TrackedChange is a recorded edit in a document. ChangeTime is a unix
// timestamp.
type TrackedChange struct {
	ID                    int    `mapstructure:"id"`
	ChangeKind            string `mapstructure:"change_kind"`
	ChangeTime            int64  `mapstructure:"change_time"`
	DefaultHighlightColor bool   `mapstructure:"default_highlight_color"`
	HighlightColor        string `mapstructure:"highlight_color"`
	HighlightMode         string `mapstructure:"highlight_mode"`
	Length                int    `mapstructure:"length"`
	Start                 int    `mapstructure:"start"`
	Text                  string `mapstructure:"text"`
	Username              string `mapstructure:"username"`
}

// IncorrectWord is a spelling error found by CheckText.
type IncorrectWord struct {
	Length      int    `mapstructure:"length"`
	Start       int    `mapstructure:"start"`
	Text        string `mapstructure:"text"`
	IsDuplicate bool   `mapstructure:"is_duplicate"`
	Language    string `mapstructure:"language"`
}

// APIKey is an API key of the account.
type APIKey struct {
	Key    string `mapstructure:"key"`
	Active bool   `mapstructure:"active"`
}
