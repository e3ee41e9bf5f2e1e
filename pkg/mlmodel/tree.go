package mlmodel

import (
	"errors"
	"math/rand"
	"sort"
	"time"
)

// DecisionTreeRegressor is a CART-style regression tree. Splits minimize the
// weighted sum of squared errors of the children; leaves predict the mean
// target of their samples.
type DecisionTreeRegressor struct {
	// Hyperparameters / options
	MaxDepth        int   // maximum depth (root depth = 0). 0 => no limit
	MinSamplesSplit int   // minimum samples to attempt a split
	MinSamplesLeaf  int   // minimum samples required in each leaf
	MaxFeatures     int   // 0 => use all features, >0 => features sampled per split
	RandomState     int64 // seed for feature subsampling

	// Root is exported so the stock gob encoder can persist the tree.
	Root *RegNode
}

// RegNode is one node of a fitted regression tree.
type RegNode struct {
	IsLeaf    bool
	Feature   int
	Threshold float64 // x <= Threshold => left
	Left      *RegNode
	Right     *RegNode

	// leaf data
	N     int
	Value float64 // mean target of the samples that reached this leaf
}

// TreeOption is functional config for DecisionTreeRegressor.
type TreeOption func(*DecisionTreeRegressor)

func WithMaxDepth(d int) TreeOption { return func(t *DecisionTreeRegressor) { t.MaxDepth = d } }
func WithMinSamplesSplit(n int) TreeOption {
	return func(t *DecisionTreeRegressor) { t.MinSamplesSplit = n }
}
func WithMinSamplesLeaf(n int) TreeOption {
	return func(t *DecisionTreeRegressor) { t.MinSamplesLeaf = n }
}
func WithMaxFeatures(k int) TreeOption { return func(t *DecisionTreeRegressor) { t.MaxFeatures = k } }
func WithRandomState(seed int64) TreeOption {
	return func(t *DecisionTreeRegressor) { t.RandomState = seed }
}

// NewDecisionTreeRegressor returns a regressor with sensible defaults.
func NewDecisionTreeRegressor(opts ...TreeOption) *DecisionTreeRegressor {
	t := &DecisionTreeRegressor{
		MaxDepth:        0,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
		MaxFeatures:     0,
		RandomState:     time.Now().UnixNano(),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Fit trains the tree on X (n x p) and y (n targets). idx selects the rows
// to train on; nil means all rows, a bootstrap resample may repeat rows.
func (t *DecisionTreeRegressor) Fit(X [][]float64, y []float64, idx []int) error {
	if len(X) == 0 {
		return errors.New("dtree: empty X")
	}
	n := len(X)
	if len(y) != n {
		return errors.New("dtree: X and y length mismatch")
	}
	p := len(X[0])
	for i := range X {
		if len(X[i]) != p {
			return errors.New("dtree: inconsistent number of features in X rows")
		}
	}
	if idx == nil {
		idx = make([]int, n)
		for i := range idx {
			idx[i] = i
		}
	}

	rnd := rand.New(rand.NewSource(t.RandomState))
	t.Root = t.buildNode(X, y, idx, 0, p, rnd)
	return nil
}

// Predict returns the predicted target for each row in X.
func (t *DecisionTreeRegressor) Predict(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i := range X {
		out[i] = t.PredictOne(X[i])
	}
	return out
}

// PredictOne walks the tree for a single feature vector.
func (t *DecisionTreeRegressor) PredictOne(x []float64) float64 {
	if t.Root == nil {
		return 0
	}
	node := t.Root
	for !node.IsLeaf {
		if x[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Value
}

// A struct to hold the results of a single feature's best split search.
type regSplit struct {
	gain      float64
	feature   int
	threshold float64
	leftIdx   []int
	rightIdx  []int
}

type valuePair struct {
	v float64
	i int
}

func (t *DecisionTreeRegressor) buildNode(X [][]float64, y []float64, idx []int, depth, p int, rnd *rand.Rand) *RegNode {
	node := &RegNode{N: len(idx)}

	sum := 0.0
	for _, ii := range idx {
		sum += y[ii]
	}
	mean := sum / float64(len(idx))

	leaf := func() *RegNode {
		node.IsLeaf = true
		node.Value = mean
		return node
	}

	if len(idx) < t.MinSamplesSplit || len(idx) < 2*t.MinSamplesLeaf {
		return leaf()
	}
	if t.MaxDepth > 0 && depth >= t.MaxDepth {
		return leaf()
	}

	parentSSE := 0.0
	for _, ii := range idx {
		d := y[ii] - mean
		parentSSE += d * d
	}
	if parentSSE == 0 {
		return leaf()
	}

	// determine features to try
	featIndices := make([]int, p)
	for j := 0; j < p; j++ {
		featIndices[j] = j
	}
	if t.MaxFeatures > 0 && t.MaxFeatures < p {
		rnd.Shuffle(p, func(a, b int) {
			featIndices[a], featIndices[b] = featIndices[b], featIndices[a]
		})
		featIndices = featIndices[:t.MaxFeatures]
	}

	best := regSplit{gain: 0, feature: -1}
	for _, f := range featIndices {
		if s := t.bestSplitForFeature(X, y, idx, f, parentSSE); s.gain > best.gain {
			best = s
		}
	}
	if best.feature == -1 {
		return leaf()
	}

	node.IsLeaf = false
	node.Feature = best.feature
	node.Threshold = best.threshold
	node.Left = t.buildNode(X, y, best.leftIdx, depth+1, p, rnd)
	node.Right = t.buildNode(X, y, best.rightIdx, depth+1, p, rnd)
	return node
}

// bestSplitForFeature scans the sorted values of one feature, maintaining
// running sums so each candidate threshold is evaluated in O(1).
func (t *DecisionTreeRegressor) bestSplitForFeature(X [][]float64, y []float64, idx []int, f int, parentSSE float64) regSplit {
	result := regSplit{gain: 0, feature: -1}

	pairs := make([]valuePair, len(idx))
	for i, ii := range idx {
		pairs[i] = valuePair{X[ii][f], ii}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].v < pairs[b].v })

	n := len(pairs)
	totalSum, totalSq := 0.0, 0.0
	for _, pr := range pairs {
		totalSum += y[pr.i]
		totalSq += y[pr.i] * y[pr.i]
	}

	leftSum, leftSq := 0.0, 0.0
	for s := 1; s < n; s++ {
		yi := y[pairs[s-1].i]
		leftSum += yi
		leftSq += yi * yi
		if pairs[s].v == pairs[s-1].v {
			continue
		}
		if s < t.MinSamplesLeaf || n-s < t.MinSamplesLeaf {
			continue
		}

		rightSum := totalSum - leftSum
		rightSq := totalSq - leftSq
		nl, nr := float64(s), float64(n-s)
		// SSE = sum(y^2) - n*mean^2 for each side
		childSSE := (leftSq - leftSum*leftSum/nl) + (rightSq - rightSum*rightSum/nr)
		gain := parentSSE - childSSE
		if gain > result.gain {
			thr := (pairs[s-1].v + pairs[s].v) / 2.0
			result = regSplit{gain: gain, feature: f, threshold: thr}
			result.leftIdx = indicesFromPairs(pairs[:s])
			result.rightIdx = indicesFromPairs(pairs[s:])
		}
	}
	return result
}

func indicesFromPairs(pairs []valuePair) []int {
	out := make([]int, len(pairs))
	for i, pr := range pairs {
		out[i] = pr.i
	}
	return out
}
