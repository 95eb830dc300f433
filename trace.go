package bisect

import "go.uber.org/zap"

// Traced wraps a classifier so that every probe is logged at debug level
// with the probed index and the resulting direction. The wrapper is
// otherwise transparent: results and probe order are unchanged.
//
// Search itself never logs (it performs no I/O); callers who want probe
// visibility wrap their classifier before passing it in.
func Traced[X, A, B any](logger *zap.Logger, classify Classifier[X, A, B]) Classifier[X, A, B] {
	return func(x X) Direction[A, B] {
		d := classify(x)
		logger.Debug("probe",
			zap.Any("index", x),
			zap.Stringer("direction", d.Side()),
		)
		return d
	}
}
