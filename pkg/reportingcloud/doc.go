// Package reportingcloud is a client for the ReportingCloud document
// generation service.
//
// A Client validates caller input, builds the request body, dispatches it
// once through a Transport and normalizes the response. Invalid input is
// reported as an *assert.InvalidArgumentError before anything is sent, and
// transport errors are returned as they are.
//
// Unexpected status codes are reported in two ways. Read operations return a
// nil result and mutations (uploads and deletes) return false, both with a
// nil error. Document processing (convert, merge, find and replace, append)
// returns an *OperationError instead. Every failure is logged at warn level
// and passed to Config.OnOperationFailure.
//
// Example:
//
//	client, err := reportingcloud.NewClient(&reportingcloud.Config{
//		APIKey: os.Getenv("REPORTING_CLOUD_API_KEY"),
//	})
//	if err != nil {
//		return err
//	}
//
//	docs, err := client.MergeDocument(ctx, reportingcloud.MergeRequest{
//		MergeData:    []map[string]any{{"name": "Jane"}},
//		ReturnFormat: "PDF",
//		Template:     builder.TemplateReference{Name: "sample_invoice.tx"},
//	})
package reportingcloud
