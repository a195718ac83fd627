package obs

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Time logs how long an operation took once the deferred closure runs.
// Pass the address of the named error return so failures are logged with
// their cause:
//
//	func do(...) (err error) {
//		defer obs.Time("import route")(&err)
//		...
//	}
func Time(op string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Warn().Str("op", op).Dur("dur", dur).Err(*errp).Msg("Operation failed")
			return
		}
		log.Debug().Str("op", op).Dur("dur", dur).Msg("Operation complete")
	}
}
