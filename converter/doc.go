// Package converter turns one Metlink vehicle positions envelope into one
// CoT-style GeoJSON feature collection.
//
// # Pipeline
//
// A single Run performs, in order:
//
//  1. Fetch — one best-effort feed retrieval via the injected FeedSource.
//  2. Validate — entities missing the vehicle or position sub-record are
//     skipped individually; a malformed record never aborts the batch.
//  3. Classify — a pluggable policy assigns each record a category (bus,
//     train, ferry) and the route id shown to the user. Two policies exist:
//     trip-id prefix (with ferries) and numeric route id (without).
//  4. Deduplicate — one feature per vehicle identity, keyed by the feature
//     id; the last record in feed order wins.
//  5. Enrich — callsign, kinematics with the CoT unknown sentinel,
//     translated occupancy, remarks block, metadata bag.
//  6. Emit — exactly one Submit call per run, empty collections included.
//
// There is no internal concurrency and no cross-run state: batches are tens
// to low hundreds of vehicles and the dedup store is rebuilt every run.
//
// # Error handling
//
// Upstream failures (transport, status, decode, envelope) are logged and
// degrade to an empty submission; they never propagate. The only error Run
// returns comes from the Submitter.
package converter
