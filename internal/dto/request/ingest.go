package request

// ObjectRef names a stored object, shaped like an object-finalize event payload.
type ObjectRef struct {
	Bucket string `json:"bucket" validate:"required"`
	Name   string `json:"name" validate:"required"`
}

type ReadTableRequest struct {
	Bucket string `validate:"required"`
	Key    string `validate:"required"`
	Rows   int    `validate:"min=0,max=1000"`
}
