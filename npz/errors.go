package npz

import (
	"errors"
	"fmt"
)

// ErrDuplicateMember is returned when two names collide once the ".npy"
// extension is applied.
var ErrDuplicateMember = errors.New("duplicate member")

// MemberError reports an archive member that failed to decode.
type MemberError struct {
	Name string
	Err  error
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("member %q: %v", e.Name, e.Err)
}

func (e *MemberError) Unwrap() error {
	return e.Err
}
