package constraint

import "github.com/rs/zerolog"

// logSink is the solver's internal view of a logger: just enough to
// recover the original C++'s pervasive cout tracing (every bound
// change, every branch attempt, every external-constraint verdict) at
// debug level, without coupling the propagator and search driver
// directly to zerolog's full API or to the golden-file diagnostics
// Solve prints on stdout.
type logSink struct {
	log zerolog.Logger
}

func (s logSink) boundChanged(v VarID, cid ConsID, bound string, newValue int32) {
	if s.log.GetLevel() > zerolog.DebugLevel {
		return
	}
	s.log.Debug().
		Int("var", int(v)).
		Int("constraint", int(cid)).
		Str("bound", bound).
		Int32("value", newValue).
		Msg("tightened bound")
}

func (s logSink) branchAttempt(v VarID, value int32) {
	if s.log.GetLevel() > zerolog.DebugLevel {
		return
	}
	s.log.Debug().Int("var", int(v)).Int32("value", value).Msg("branch attempt")
}

func (s logSink) externalVerdict(index int, ok bool) {
	if s.log.GetLevel() > zerolog.DebugLevel {
		return
	}
	s.log.Debug().Int("predicate", index).Bool("consistent", ok).Msg("external predicate checked")
}
