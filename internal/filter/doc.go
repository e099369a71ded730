// Package filter provides single-input point filters.
//
// A point filter maps each pixel independently of its neighbours, so a
// buffer can be split into disjoint ranges and filtered concurrently.
package filter
