package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR is invoked in a binary built
// without the "ocr" build tag. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")
