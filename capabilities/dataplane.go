package capabilities

import (
	"context"

	"github.com/damedic/azsearch-toolbox-go/capabilities/update"
	"github.com/damedic/azsearch-toolbox-go/model/gen/dataplane"
)

// The IndexRead interface provides read access to index definitions.
type IndexRead interface {
	Index(ctx context.Context, name string) (dataplane.SearchIndex, error)
	Indexes(ctx context.Context) (dataplane.ListIndexesResult, error)
}

// The IndexCreateOrUpdate interface provides creation and update of index definitions.
//
// The persisted index is returned.
type IndexCreateOrUpdate interface {
	CreateOrUpdateIndex(ctx context.Context, index dataplane.SearchIndex) (update.Result[dataplane.SearchIndex], error)
}

// The IndexDelete interface provides deletion of index definitions.
type IndexDelete interface {
	DeleteIndex(ctx context.Context, name string) error
}

// The IndexStatistics interface provides document count and storage usage of an index.
type IndexStatistics interface {
	IndexStatistics(ctx context.Context, name string) (dataplane.GetIndexStatisticsResult, error)
}

// The DocumentIndex interface applies a batch of index actions.
//
// The result contains one entry per action, a failed action does not fail the batch.
type DocumentIndex interface {
	IndexDocuments(ctx context.Context, index string, batch dataplane.IndexBatch) (dataplane.IndexDocumentsResult, error)
}

// The DocumentLookup interface provides retrieval of a single document by its key.
//
// A missing document is signaled with a dataplane.ErrorResponse of code DocumentNotFound.
type DocumentLookup interface {
	LookupDocument(ctx context.Context, index, key string) (dataplane.Document, error)
}

// The DocumentSearch interface provides full text search over the documents of an index.
type DocumentSearch interface {
	SearchDocuments(ctx context.Context, index string, request dataplane.SearchRequest) (dataplane.SearchDocumentsResult, error)
}
