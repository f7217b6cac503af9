// Package cot declares the output side of the converter: CoT-style GeoJSON
// point features and the fixed per-category presentation table.
package cot
