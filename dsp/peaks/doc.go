// Package peaks finds threshold-bounded peaks in one-dimensional signals.
//
// A peak region is a left trough, a peak and a right trough, together with
// the trapezoidal area of the signal between the two troughs. Detection is a
// single pass over a fully materialized signal; regions still open when the
// signal ends are not reported.
package peaks
