package shell

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// DefaultMaxPathLen bounds the length of any cd argument.
const DefaultMaxPathLen = unix.PathMax

// Resolution is the outcome of resolving a cd target: the destination to hand
// to the directory change, and whether it should be echoed back to the user
// (the previous-directory toggle prints where it is taking you).
type Resolution struct {
	Path string
	Echo bool
}

// Resolve computes the destination for a cd request without touching any
// state. The rule is chosen by the first /-separated segment of the request:
//
//	nil        -> home directory
//	~          -> home directory, remaining segments appended
//	-          -> previous directory verbatim, remaining segments ignored
//	/...       -> rebuilt from the root
//	anything   -> appended to current
//
// Segments are joined in their original order; "." and ".." are passed
// through untouched for the directory change itself to resolve.
func (s *Session) Resolve(current string, requested *string) (Resolution, error) {
	if requested == nil {
		return Resolution{Path: s.home}, nil
	}

	if len(*requested) > s.maxPath {
		return Resolution{}, fmt.Errorf("%w: %d bytes", ErrPathTooLong, len(*requested))
	}

	segments, _ := pathSplitter.Tokenize(*requested)

	switch {
	case len(segments) > 0 && segments[0] == "~":
		return Resolution{Path: joinSegments(s.home, segments[1:])}, nil

	case len(segments) > 0 && segments[0] == "-":
		return Resolution{Path: s.previous, Echo: true}, nil

	case strings.HasPrefix(*requested, "/"):
		return Resolution{Path: "/" + strings.Join(segments, "/")}, nil

	default:
		return Resolution{Path: joinSegments(current, segments)}, nil
	}
}

// Path segments reuse the command tokenizer with / as the only delimiter.
var pathSplitter = NewDefaultTokenizer("/", DefaultMaxArgs)

func joinSegments(base string, segments []string) string {
	if len(segments) == 0 {
		return base
	}

	return base + "/" + strings.Join(segments, "/")
}
