// Package stat prepares data for plotting: conversion of raw pairs
// and frequency distributions.
package stat

import (
	"gonum.org/v1/plot/plotter"

	"github.com/vdobler/termplot"
)

// Pair is a raw (x,y) sample.
type Pair [2]float64

// Pairs converts data to points on real axes.
func Pairs(data []Pair) []termplot.XY {
	pts := make([]termplot.XY, len(data))
	for i, p := range data {
		pts[i] = termplot.XY{X: termplot.Float(p[0]), Y: termplot.Float(p[1])}
	}
	return pts
}

// Histogram counts the y values of data in bins buckets of equal width
// covering [min,max]. Values outside [min,max] are ignored. A value
// equal to max falls just past the last bucket and is not counted.
//
// The result has one point per bucket: x is the left edge of the
// bucket and y the count.
func Histogram(data []Pair, min, max float64, bins int) []termplot.XY {
	ys := make([]float64, len(data))
	for i, p := range data {
		ys[i] = p[1]
	}
	return histogram(ys, min, max, bins)
}

// HistogramValues is like Histogram for the values of vs.
func HistogramValues(vs plotter.Valuer, min, max float64, bins int) []termplot.XY {
	ys := make([]float64, vs.Len())
	for i := range ys {
		ys[i] = vs.Value(i)
	}
	return histogram(ys, min, max, bins)
}

func histogram(ys []float64, min, max float64, bins int) []termplot.XY {
	if bins <= 0 {
		return nil
	}
	counts := make([]int, bins)
	step := (max - min) / float64(bins)

	for _, y := range ys {
		if y < min || y > max {
			continue
		}
		bucket := int((y - min) / step)
		if bucket < len(counts) {
			counts[bucket]++
		}
	}

	pts := make([]termplot.XY, bins)
	for i, n := range counts {
		pts[i] = termplot.XY{
			X: termplot.Float(min + float64(i)*step),
			Y: termplot.Float(n),
		}
	}
	return pts
}

// FromXYer converts gonum plotter data to points on real axes.
func FromXYer(xys plotter.XYer) []termplot.XY {
	pts := make([]termplot.XY, xys.Len())
	for i := range pts {
		x, y := xys.XY(i)
		pts[i] = termplot.XY{X: termplot.Float(x), Y: termplot.Float(y)}
	}
	return pts
}

// Bounds returns the smallest and largest y value of data. Empty data
// yields 0, 0.
func Bounds(data []Pair) (min, max float64) {
	for i, p := range data {
		if i == 0 || p[1] < min {
			min = p[1]
		}
		if i == 0 || p[1] > max {
			max = p[1]
		}
	}
	return min, max
}
