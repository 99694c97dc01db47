package script

import (
	"fmt"
	"strconv"

	"github.com/tuannh982/sparsecoll/collection"
)

func (st Step) arg(i int) (any, error) {
	if i >= len(st.Args) {
		return nil, fmt.Errorf("%w: %s needs argument %d", ErrBadArgs, st.Op, i+1)
	}
	return st.Args[i], nil
}

// stringArg renders scalar arguments as keys, so `1` and `"1"` name the same key.
func (st Step) stringArg(i int) (string, error) {
	a, err := st.arg(i)
	if err != nil {
		return "", err
	}
	if a == nil {
		return "", fmt.Errorf("%w: argument %d of %s is null", ErrBadArgs, i+1, st.Op)
	}
	return fmt.Sprint(a), nil
}

func (st Step) intArg(i int) (int, error) {
	a, err := st.arg(i)
	if err != nil {
		return 0, err
	}
	switch v := a.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%w: argument %d of %s is not an integer", ErrBadArgs, i+1, st.Op)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrBadArgs, err)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: argument %d of %s is not an integer", ErrBadArgs, i+1, st.Op)
}

func (st Step) boolArg(i int) (bool, error) {
	a, err := st.arg(i)
	if err != nil {
		return false, err
	}
	switch v := a.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrBadArgs, err)
		}
		return b, nil
	}
	return false, fmt.Errorf("%w: argument %d of %s is not a boolean", ErrBadArgs, i+1, st.Op)
}

// pairArgs reads flattened key/value arguments starting at from. A null
// value becomes a null pair.
func (st Step) pairArgs(from int) ([]collection.Pair[string, any], error) {
	if from > len(st.Args) {
		from = len(st.Args)
	}
	rest := st.Args[from:]
	if len(rest)%2 != 0 {
		return nil, fmt.Errorf("%w: %s needs key/value pairs, got %d values", ErrBadArgs, st.Op, len(rest))
	}
	pairs := make([]collection.Pair[string, any], 0, len(rest)/2)
	for i := 0; i < len(rest); i += 2 {
		k, err := st.stringArg(from + i)
		if err != nil {
			return nil, err
		}
		if rest[i+1] == nil {
			pairs = append(pairs, collection.NullPair[string, any](k))
		} else {
			pairs = append(pairs, collection.P[string, any](k, rest[i+1]))
		}
	}
	return pairs, nil
}

func (st Step) rangeArgs() (collection.Range[string], error) {
	start, err := st.stringArg(0)
	if err != nil {
		return collection.Range[string]{}, err
	}
	end, err := st.stringArg(1)
	if err != nil {
		return collection.Range[string]{}, err
	}
	return collection.NewRange(start, end), nil
}
