package service

// DeleteResult is the outcome of a delete attempt
type DeleteResult struct {
	ID  uint
	Err error
}

// OK reports whether the delete succeeded
func (r DeleteResult) OK() bool {
	return r.Err == nil
}

// DeletePolicy decides which delete failures reach the caller. A nil return
// means the failure, if any, is discarded.
type DeletePolicy func(DeleteResult) error

// BestEffortDelete discards every delete failure
func BestEffortDelete(DeleteResult) error {
	return nil
}

// StrictDelete surfaces every delete failure
func StrictDelete(res DeleteResult) error {
	return res.Err
}
