package seqan

import "fmt"

// Normalize converts raw to uppercase and removes every char
// that is not one of 'A', 'C', 'G', 'T', 'U'. It never fails,
// the returned sequence may be empty.
func Normalize(raw string) string {

	b := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {

		switch n := raw[i]; n {
		case 'A', 'C', 'G', 'T', 'U':
			b = append(b, n)
		case 'a', 'c', 'g', 't', 'u':
			b = append(b, n-'a'+'A')
		default:
			// anything else is dropped
		}
	}
	return string(b)
}

// Validate checks that raw only contains bases of the alphabet of
// type t, ignoring case and whitespace. It returns an error describing
// the first invalid char.
func Validate(raw string, t SequenceType) error {

	for i, r := range raw {

		switch r {
		case 'A', 'C', 'G', 'a', 'c', 'g':
			continue
		case 'T', 't':
			if t != RNA {
				continue
			}
		case 'U', 'u':
			if t == RNA {
				continue
			}
		case ' ', '\t', '\n', '\r':
			continue
		}
		return fmt.Errorf("invalid char in %s sequence at position %d: %q", typeName(t), i, r)
	}
	return nil
}

func typeName(t SequenceType) string {
	if t == RNA {
		return "RNA"
	}
	return "DNA"
}
