package gen

// b64Alphabet is the 64-symbol identifier alphabet of the engine. Three
// digits cover 2^18 nodes; with the fixed 'e' prefix every name is four
// characters, which the engine's 24-bit identifier hash keeps
// collision-free.
const b64Alphabet = "_abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789$"

// nodeName encodes node n as its binder name in unrolled DAG programs.
func nodeName(n uint32) string {
	return string([]byte{
		'e',
		b64Alphabet[(n>>12)&63],
		b64Alphabet[(n>>6)&63],
		b64Alphabet[n&63],
	})
}
