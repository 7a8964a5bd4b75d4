package keyspace

// Odometer walks the space in index order without decoding every index from scratch.
// The digits are advanced like a mechanical counter: the last position is incremented and
// carries into the position before it. When the carry runs off the front the string grows
// by one symbol and restarts at the all-zero string of the new length, which is exactly the
// next index of the space.
//
// An Odometer is owned by a single goroutine
type Odometer struct {
	space *Space

	digits []int  // digit value of each position, most significant first
	data   []byte // the symbols for digits, this is what Bytes returns
	length int    // current string length
	index  uint64 // global index of the current string
	done   bool   // set once Next walked past the last string of the space
}

// Odometer returns an odometer positioned at the global index start
func (s *Space) Odometer(start uint64) (*Odometer, error) {
	o := &Odometer{
		space:  s,
		digits: make([]int, s.lengths.Max),
		data:   make([]byte, s.lengths.Max),
	}

	length, err := s.digits(start, o.digits)
	if err != nil {
		return nil, err
	}
	o.length = length
	o.index = start
	for i := 0; i < length; i++ {
		o.data[i] = s.alphabet.Symbol(o.digits[i])
	}
	return o, nil
}

// Bytes returns the current string. The slice is reused by Next, copy it if you need to keep it
func (o *Odometer) Bytes() []byte {
	return o.data[:o.length]
}

func (o *Odometer) String() string {
	return string(o.Bytes())
}

// Index is the global index of the current string
func (o *Odometer) Index() uint64 {
	return o.index
}

// Len is the length of the current string
func (o *Odometer) Len() int {
	return o.length
}

// Next advances to the following index. It returns false once the last string of the space has
// been passed, after which the odometer stays exhausted
func (o *Odometer) Next() bool {
	if o.done || o.index+1 >= o.space.Total() {
		o.done = true
		return false
	}

	var (
		base     = o.space.Base()
		alphabet = o.space.alphabet
		zero     = alphabet.Symbol(0)
	)
	for i := o.length - 1; i >= 0; i-- {
		o.digits[i]++
		if o.digits[i] < base {
			o.data[i] = alphabet.Symbol(o.digits[i])
			o.index++
			return true
		}
		o.digits[i] = 0
		o.data[i] = zero
	}

	// carried past the most significant digit, move on to the next length
	o.length++
	for i := 0; i < o.length; i++ {
		o.digits[i] = 0
		o.data[i] = zero
	}
	o.index++
	return true
}
