// Package scan slides a fixed-length window over a series of trajectory
// samples and computes a positional dispersion metric per window.
//
// A window covers consecutive integer steps and is only produced when
// every step in its range is present in the series; gaps skip the
// window rather than shrinking it. The metric is the larger of the
// population standard deviations of the x and z coordinates, a proxy
// for how stationary the trajectory is during that window.
package scan
