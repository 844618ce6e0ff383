// Package analysis provides measures of order and cost for sort runs.
//
//   - [Inversions]: number of out-of-order pairs, counted by merge sort
//   - [Sortedness]: fraction of adjacent pairs already in order
//   - [Runs]: number of maximal non-decreasing runs
//   - [GrowthExponent]: empirical exponent k of cost ~ n^k from a log-log fit
//
// # Growth
//
// Step counts measured at several sizes can be summarised by their slope on
// a log-log scale:
//
//	k, _ := analysis.GrowthExponent([]int{16, 32, 64}, costs)
//	fmt.Println(analysis.Classify(k)) // e.g. "quadratic"
package analysis
