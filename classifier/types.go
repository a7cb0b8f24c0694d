package classifier

// Classification is one (label, probability) pair produced by the model
// for a single candidate class.
type Classification struct {
	Label       string  `json:"label"`
	Probability float32 `json:"probability"`
}

// Status reports the current state of a Classifier handle.
type Status struct {
	Loaded bool `json:"loaded"`
	// ClassCount is the number of classes the loaded model distinguishes,
	// zero before Load.
	ClassCount int `json:"class_count"`
	// PlaceholderLabels is set when the label file could not be fetched and
	// classifications carry class_N placeholder names.
	PlaceholderLabels bool `json:"placeholder_labels"`
}

// ProgressFunc reports download progress. total is -1 when the server did
// not announce a content length.
type ProgressFunc func(received, total int64)

// LoadOptions configure model loading.
type LoadOptions struct {
	OnProgress ProgressFunc
}

// Options configure a single classification call.
type Options struct {
	// MaxResults caps the number of returned records; zero means the
	// configured default.
	MaxResults int
	// TargetSize, when non-zero, must match the input size the model was
	// loaded with.
	TargetSize int
	// NoNormalize switches preprocessing to plain [0,1] scaling instead of
	// the default [-1,1] normalization.
	NoNormalize bool

	Load LoadOptions
}
