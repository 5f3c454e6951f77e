package regression

import (
	"math"
	"math/rand"
	"sort"
)

const (
	forestTrees    = 100
	forestSeed     = 42
	treeMaxDepth   = 6
	treeMinSamples = 2
)

// Forest is a bagged ensemble of regression trees. Training is seeded, so
// the same history always yields the same forecast.
type Forest struct {
	trees []*treeNode
}

type treeNode struct {
	feature   int
	threshold float64
	value     float64
	left      *treeNode
	right     *treeNode
}

func (n *treeNode) isLeaf() bool { return n.left == nil }

// FitForest trains an ensemble over the samples. Each sample is a fixed-width
// feature vector; targets holds the matching response values.
func FitForest(samples [][]float64, targets []float64) *Forest {
	rng := rand.New(rand.NewSource(forestSeed))
	f := &Forest{trees: make([]*treeNode, 0, forestTrees)}
	n := len(samples)
	if n == 0 {
		return f
	}

	for t := 0; t < forestTrees; t++ {
		// Bootstrap sample with replacement.
		bootSamples := make([][]float64, n)
		bootTargets := make([]float64, n)
		for i := 0; i < n; i++ {
			j := rng.Intn(n)
			bootSamples[i] = samples[j]
			bootTargets[i] = targets[j]
		}
		f.trees = append(f.trees, growTree(bootSamples, bootTargets, 0, rng))
	}
	return f
}

// Predict averages the per-tree predictions for one feature vector.
func (f *Forest) Predict(features []float64) float64 {
	if len(f.trees) == 0 {
		return 0
	}
	var sum float64
	for _, tree := range f.trees {
		sum += tree.predict(features)
	}
	return sum / float64(len(f.trees))
}

func (n *treeNode) predict(features []float64) float64 {
	for !n.isLeaf() {
		if features[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}

func growTree(samples [][]float64, targets []float64, depth int, rng *rand.Rand) *treeNode {
	if depth >= treeMaxDepth || len(samples) < treeMinSamples || uniform(targets) {
		return &treeNode{value: mean(targets)}
	}

	feature, threshold, ok := bestSplit(samples, targets, rng)
	if !ok {
		return &treeNode{value: mean(targets)}
	}

	var leftS, rightS [][]float64
	var leftT, rightT []float64
	for i, s := range samples {
		if s[feature] <= threshold {
			leftS = append(leftS, s)
			leftT = append(leftT, targets[i])
		} else {
			rightS = append(rightS, s)
			rightT = append(rightT, targets[i])
		}
	}
	if len(leftT) == 0 || len(rightT) == 0 {
		return &treeNode{value: mean(targets)}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      growTree(leftS, leftT, depth+1, rng),
		right:     growTree(rightS, rightT, depth+1, rng),
	}
}

// bestSplit scans every feature and candidate threshold for the split with
// the lowest weighted variance of the two sides.
func bestSplit(samples [][]float64, targets []float64, rng *rand.Rand) (feature int, threshold float64, ok bool) {
	numFeatures := len(samples[0])
	bestScore := math.Inf(1)

	for fi := 0; fi < numFeatures; fi++ {
		values := make([]float64, len(samples))
		for i, s := range samples {
			values[i] = s[fi]
		}
		sort.Float64s(values)

		for i := 1; i < len(values); i++ {
			if values[i] == values[i-1] {
				continue
			}
			candidate := (values[i] + values[i-1]) / 2

			var leftT, rightT []float64
			for j, s := range samples {
				if s[fi] <= candidate {
					leftT = append(leftT, targets[j])
				} else {
					rightT = append(rightT, targets[j])
				}
			}
			if len(leftT) == 0 || len(rightT) == 0 {
				continue
			}
			score := weightedVariance(leftT, rightT)
			if score < bestScore {
				bestScore = score
				feature = fi
				threshold = candidate
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

func weightedVariance(left, right []float64) float64 {
	total := float64(len(left) + len(right))
	return variance(left)*float64(len(left))/total + variance(right)*float64(len(right))/total
}

func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs))
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func uniform(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] != xs[0] {
			return false
		}
	}
	return true
}
