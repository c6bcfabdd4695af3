package coverage

// Tuple is a canonical literal-pair interaction (i,pᵢ,j,pⱼ) with i<j:
// concrete feature i assigned pᵢ together with concrete feature j
// assigned pⱼ.
type Tuple struct {
	I, J   int
	Pi, Pj bool
}

// VertexID maps a concrete feature index and a polarity to the dense
// signed-literal vertex id shared with the transaction graph:
// 2*feature + (1 if polarity else 0). Because i<j implies
// VertexID(i,·) < VertexID(j,·), a Tuple's canonical ordering and its
// vertex-pair ordering always agree.
func VertexID(feature int, polarity bool) int {
	v := 2 * feature
	if polarity {
		v++
	}

	return v
}

// FeatureOf inverts VertexID.
func FeatureOf(vertex int) (feature int, polarity bool) {
	return vertex / 2, vertex%2 == 1
}
