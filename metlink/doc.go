// Package metlink models the Metlink GTFS-RT vehicle positions feed and
// fetches it over HTTP.
//
// The open-data API serves GTFS-RT as JSON with snake_case field names and
// numeric enum codes, so the feed types are declared by hand rather than
// reusing the protobuf bindings directly. A protobuf decode path is provided
// for generic GTFS-RT servers; both produce identical Envelope values.
//
// Fetching is a single best-effort GET per invocation. All failure modes —
// transport errors, non-2xx statuses, undecodable bodies, envelopes without
// an entity array — surface as *UpstreamError so the pipeline can degrade
// to an empty emission instead of aborting.
package metlink
