package app

// SeedForVariables derives the bootstrap seed from the number of selected
// variables: count copies of base folded with the djb2 string hash step.
// The seed depends only on how many variables are selected, not which.
func SeedForVariables(count int, base int64) int64 {
	var h uint64 = 5381
	for i := 0; i < count; i++ {
		h = h*33 + uint64(base)
	}
	return int64(h & 0x7fffffffffffffff)
}
