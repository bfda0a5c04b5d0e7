package shortseq

// Two-bit base codes. The concrete values only need to be a fixed bijection
// to {0,1,2,3}; XOR-based Hamming distance relies on that and nothing more.
const (
	codeA = 0
	codeC = 1
	codeG = 2
	codeT = 3

	invalidCode = 0xFF
)

// forwardTable maps an ASCII byte to its 2-bit code, or invalidCode for any
// byte outside {A,C,G,T,a,c,g,t}.
var forwardTable = buildForwardTable()

// reverseTable maps a 2-bit code to its uppercase ASCII byte.
var reverseTable = [4]byte{'A', 'C', 'G', 'T'}

func buildForwardTable() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidCode
	}
	t['A'], t['a'] = codeA, codeA
	t['C'], t['c'] = codeC, codeC
	t['G'], t['g'] = codeG, codeG
	t['T'], t['t'] = codeT, codeT
	return t
}

// validate checks that every byte of s is a supported base and returns the
// index and value of the first offender, or ok=true if s is clean.
func validate(s []byte) (pos int, bad byte, ok bool) {
	for i, b := range s {
		if forwardTable[b] == invalidCode {
			return i, b, false
		}
	}
	return 0, 0, true
}
