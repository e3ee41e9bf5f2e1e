package dataset

import "math/rand"

// TrainTestSplit shuffles the dataset with the given seed and splits it into
// train and test sets by testRatio. The seed makes the held-out split
// reproducible across training runs.
func TrainTestSplit(ds *Dataset, testRatio float64, seed int64) (train, test *Dataset) {
	n := ds.Len()
	indices := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(float64(n) * testRatio)

	train = &Dataset{}
	test = &Dataset{}
	for i, idx := range indices {
		if i < nTest {
			test.Listings = append(test.Listings, ds.Listings[idx])
			test.Rents = append(test.Rents, ds.Rents[idx])
		} else {
			train.Listings = append(train.Listings, ds.Listings[idx])
			train.Rents = append(train.Rents, ds.Rents[idx])
		}
	}
	return train, test
}
