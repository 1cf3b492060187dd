package engine

import "context"

// pollMask sets how often internal nodes look at the context: every
// pollMask+1 nodes.
const pollMask = 1023

// deadline adds the configured move time to ctx. A zero Deadline leaves the
// search bounded by depth (and ctx) only.
func (c Config) deadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.Deadline <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.Deadline)
}

// timeUp polls ctx once every pollMask+1 nodes and latches the result.
func (s *searcher) timeUp() bool {
	if s.stopped {
		return true
	}
	if s.stats.Nodes&pollMask == 0 && s.ctx.Err() != nil {
		s.stopped = true
	}
	return s.stopped
}
