// Package calibrate turns labeled window metrics into threshold advice
// and classification reports.
//
// Suggest aggregates the extremes of both labeled corpora and proposes
// a midpoint threshold when the classes separate cleanly; overlapping
// classes are reported as a data-quality signal instead of a guess.
// Verify applies a chosen threshold back to the labeled corpora and
// tallies how many windows land on the expected side.
package calibrate
