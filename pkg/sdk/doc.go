// Package seekdex provides an embedded Go client for the seekdex hybrid
// search engine backed by Redis with the search module.
//
// The client blends vector similarity and BM25 keyword relevance into one
// ranked result list, the same pipeline the HTTP API serves:
//
//	client, _ := seekdex.New(ctx,
//	    seekdex.WithRedis("localhost:6379", ""),
//	    seekdex.WithEmbedder(myEmbedder),
//	)
//	defer client.Close()
//
//	resp, _ := client.Search(ctx, "quarterly prospect ratings",
//	    seekdex.WithDocType("report"),
//	    seekdex.WithLimit(5),
//	)
//
// Without an embedder the semantic branch is unavailable and every search
// degrades to keyword-only mode.
package seekdex
