package rubik

// Common algorithms for convenience, written with quarter turns only.
//
// Example:
//
//	cube.Apply(rubik.SexyMove...)

// SexyMove is R U R' U', one of the most common algorithms.
// Six repetitions return the cube to where it started.
var SexyMove = []MoveType{R, U, RPrime, UPrime}

// InverseSexyMove is U R U' R'.
var InverseSexyMove = []MoveType{U, R, UPrime, RPrime}

// TPerm is the T-permutation with its R2 spelled as R R.
var TPerm = []MoveType{R, U, RPrime, UPrime, RPrime, F, R, R, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
