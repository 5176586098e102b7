// Package smoketest checks that a vector database is up and answering
// queries by running a short, fixed sequence of real operations against it.
//
// # Sequence
//
//  1. recreate_collection: drop the collection if present, create it with
//     the configured dimension and distance
//  2. upsert: insert Points random vectors (components in [0, 1)) with IDs
//     0..Points-1 in one blocking batch
//  3. count: read the exact number of stored points
//  4. search: query with a fresh random vector, at most Limit hits
//  5. verify: hit count, known IDs and descending scores (Verify only)
//  6. report: print the hits
//  7. delete_collection: drop the collection and, with Verify, confirm it is gone
//
// A successful run prints:
//
//	🔍 Search Results:
//	- ID: 7, Score: 0.9931
//	- ID: 2, Score: 0.9712
//	- ID: 5, Score: 0.9388
//
//	✅ Qdrant is working correctly!
//
// # Failure Semantics
//
// Every failure is returned as a *StepError naming the step. Verification
// failures additionally wrap one of the Err* sentinels:
//
//	_, err := runner.Run(ctx)
//	if errors.Is(err, smoketest.ErrResultOrder) { ... }
//	log.Error("smoke test failed", err, map[string]interface{}{
//	    "step": smoketest.FailedStep(err),
//	})
//
// Nothing is retried or rolled back; if the run fails after the collection
// was created, the collection stays until the next run recreates it.
//
// # Observability
//
// Each step gets its own span (smoketest.<step>) under a smoketest.run span,
// a duration observation and, on failure, a failure count in the metrics
// package.
package smoketest
