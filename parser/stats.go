package parser

// DocumentStats contains statistical information about an OAS document
type DocumentStats struct {
	PathCount      int // Number of paths defined
	OperationCount int // Total number of operations across all paths
	SchemaCount    int // Number of distinct schemas, nested ones included
	ReferenceCount int // Number of $ref placeholders
}

// GetDocumentStats counts the paths, operations, schemas and references of a
// document without resolving anything.
func GetDocumentStats(doc *Document) DocumentStats {
	if doc == nil {
		return DocumentStats{}
	}
	w := newWalker(false)
	w.document(doc)

	stats := DocumentStats{SchemaCount: w.schemas, ReferenceCount: w.refs}
	if doc.Paths != nil {
		stats.PathCount = doc.Paths.Items.Len()
		for _, item := range doc.Paths.Items.All() {
			if item != nil {
				stats.OperationCount += item.Operations().Len()
			}
		}
	}
	return stats
}
