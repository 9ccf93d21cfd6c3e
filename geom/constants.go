package geom

// Epsilon is the fuzz tolerance used throughout geom for "close enough
// to exact" comparisons (parallel vectors, zero-length checks).
const Epsilon = 1e-12
