package export

import "errors"

var (
	errUnknownKind     = errors.New("unknown export kind")
	errUnknownFormat   = errors.New("unknown export format")
	errEmptyDataset    = errors.New("dataset is empty")
	errRenderArtifact  = errors.New("failed to render artifact")
	errArtifactMissing = errors.New("artifact file missing")
)
