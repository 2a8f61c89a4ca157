package rights

// Error is used for rights index sentinel errors.
type Error string

func (err Error) Error() string {
	return string(err)
}

const (
	// ErrUnavailable is returned, wrapped, when the rights index cannot
	// be reached at all.
	ErrUnavailable Error = "rights index unavailable"
	// ErrNoSnapshot is returned by sources that haven't loaded their
	// first snapshot yet.
	ErrNoSnapshot Error = "no snapshot has been loaded"
)
