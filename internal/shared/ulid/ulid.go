package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Every analyzer run is tagged with one.
var NewULID = func() string {
	return ulid.Make().String()
}
