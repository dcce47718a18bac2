package propertymap

// RegistryVersion is bumped whenever an entity map changes.
const RegistryVersion = 1

// Registry holds one PropertyMap per service entity. It is built once per
// client and never modified.
type Registry struct {
	Version int

	AccountSettings  *PropertyMap
	APIKey           *PropertyMap
	DocumentSettings *PropertyMap
	IncorrectWord    *PropertyMap
	MergeSettings    *PropertyMap
	TemplateInfo     *PropertyMap
	TemplateList     *PropertyMap
	TrackedChanges   *PropertyMap
}

// NewRegistry returns the registry for the current service version.
func NewRegistry() *Registry {
	return &Registry{
		Version: RegistryVersion,

		AccountSettings: New("account_settings", Snake(
			"serialNumber",
			"createdDocuments",
			"uploadedTemplates",
			"maxDocuments",
			"maxTemplates",
			"validUntil",
			"proofingTransactions",
			"maxProofingTransactions",
		)...),

		APIKey: New("api_key",
			Entry{Property: "key", Key: "key"},
			Entry{Property: "active", Key: "active"},
		),

		DocumentSettings: New("document_settings", Snake(
			"author",
			"creationDate",
			"creatorApplication",
			"documentSubject",
			"documentTitle",
			"lastModificationDate",
			"userPassword",
		)...),

		IncorrectWord: New("incorrect_word", Snake(
			"length",
			"start",
			"text",
			"isDuplicate",
			"language",
		)...),

		MergeSettings: New("merge_settings", Snake(
			"author",
			"creationDate",
			"creatorApplication",
			"culture",
			"documentSubject",
			"documentTitle",
			"lastModificationDate",
			"mergeHtml",
			"removeEmptyBlocks",
			"removeEmptyFields",
			"removeEmptyImages",
			"removeTrailingWhitespace",
			"userPassword",
		)...),

		TemplateInfo: New("template_info", Snake(
			"dateTimeFormat",
			"mergeBlocks",
			"mergeFields",
			"name",
			"numericFormat",
			"preserveFormatting",
			"templateName",
			"text",
			"textAfter",
			"textBefore",
			"userDocumentProperties",
		)...),

		TemplateList: New("template_list", Snake(
			"templateName",
			"modified",
			"size",
		)...),

		TrackedChanges: New("tracked_changes", append(Snake(
			"changeKind",
			"changeTime",
			"defaultHighlightColor",
			"highlightColor",
			"highlightMode",
			"length",
			"start",
			"id",
			"text",
		), Entry{Property: "userName", Key: "username"})...),
	}
}
