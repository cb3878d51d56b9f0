// Package morphospace implements the wine parameter morphospace: a
// normalized 5-dimensional vector space in which canonical wine states
// are plotted, interpolated, classified against labeled visual
// archetypes, animated via periodic blend waveforms, and sampled into
// keyframes for downstream image generation.
//
// Every operation is a pure function over its inputs and an injected,
// read-only Registry. Nothing here blocks, performs I/O, or mutates
// shared state, so concurrent callers need no coordination.
package morphospace
